package compiler

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

func checar(t *testing.T, src string) (map[string]parser.Kind, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return NovoTypeChecker().Check(prog)
}

func TestCheckKinds(t *testing.T) {
	src := `let a = 1;
let b = a * (2 - a);
let s = "texto";
let a = b / 2;
let s = "outro";
print a;
print s;
`
	kinds, err := checar(t, src)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]parser.Kind{
		"a": parser.KindInt,
		"b": parser.KindInt,
		"s": parser.KindStr,
	}
	if diff := pretty.Diff(kinds, want); len(diff) > 0 {
		t.Errorf("kinds mismatch:\n%s", strings.Join(diff, "\n"))
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		linha int
		msg   string
	}{
		{"print undefined", "let x = 1;\nprint y;", 2, "undefined variable `y`"},
		{"use before let", "let x = x + 1;", 1, "undefined variable `x`"},
		{"string in expression", "let s = \"a\";\nlet n = 1 + s;", 2, "`s` is a string"},
		{"int becomes str", "let x = 1;\nlet x = \"a\";", 2, "`x` is Int"},
		{"str becomes int", "let s = \"a\";\n// nada\nlet s = 3;", 3, "`s` is Str"},
	}
	for _, tt := range tests {
		_, err := checar(t, tt.src)
		if utils.KindOf(err) != utils.SemanticError {
			t.Errorf("%s: error = %v, want semantic error", tt.name, err)
			continue
		}
		if utils.LineOf(err) != tt.linha {
			t.Errorf("%s: line = %d, want %d", tt.name, utils.LineOf(err), tt.linha)
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%s: %q does not mention %q", tt.name, err, tt.msg)
		}
	}
}
