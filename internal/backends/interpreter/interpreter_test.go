package interpreter

import (
	"bytes"
	"testing"

	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

func executar(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	var saida bytes.Buffer
	_, err = NewInterpreterBackend(&saida).Compile(prog, "ignored")
	return saida.String(), err
}

func TestInterpretPrograms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"let x = 2 + 3 * 4;\nprint x;", "14\n"},
		{"let x = 2 - 3 - 4;\nprint x;", "-5\n"},
		{"let x = -2 * 3;\nprint x;", "-6\n"},
		{"let x = (2 + 3) * 4;\nprint x;", "20\n"},
		{"let s = \"hi\\n\";\nprint s;", "hi\n\n"},
		{"let a = 10;\nlet b = a / 3;\nprint b;\nprint a;", "3\n10\n"},
		{"let a = -7 / 2;\nprint a;", "-3\n"},
		{"let a = 5 / 0;\nprint a;", "0\n"},
		{"let x = 1;\nlet x = x + 1;\nprint x;", "2\n"},
		{"let x = 2147483647 + 1;\nprint x;", "-2147483648\n"},
		{"// comentário\n\nlet s = \"a\\tb\";\nprint s;", "a\tb\n"},
	}
	for _, tt := range tests {
		got, err := executar(t, tt.src)
		if err != nil {
			t.Errorf("%q: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q printed %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestInterpretSemanticErrors(t *testing.T) {
	tests := []struct {
		src   string
		linha int
	}{
		{"print y;", 1},
		{"let x = 1;\nlet y = x + z;", 2},
		{"let s = \"a\";\nlet x = s * 2;", 2},
		{"let x = 1;\nlet x = \"a\";", 2},
	}
	for _, tt := range tests {
		_, err := executar(t, tt.src)
		if utils.KindOf(err) != utils.SemanticError || utils.LineOf(err) != tt.linha {
			t.Errorf("%q: error = %v, want semantic error at line %d", tt.src, err, tt.linha)
		}
	}
}
