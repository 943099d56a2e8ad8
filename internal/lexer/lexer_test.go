package lexer

import (
	"testing"

	"github.com/khevencolino/mini/internal/utils"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		types []TokenType
	}{
		{"", []TokenType{EOF}},
		{"   \t ", []TokenType{EOF}},
		{"42", []TokenType{INT, EOF}},
		{"x_1", []TokenType{IDENT, EOF}},
		{"_", []TokenType{IDENT, EOF}},
		{"2 + 3 * 4", []TokenType{INT, PLUS, INT, STAR, INT, EOF}},
		{"-(a-b)/c", []TokenType{MINUS, LPAREN, IDENT, MINUS, IDENT, RPAREN, SLASH, IDENT, EOF}},
		{"12ab", []TokenType{INT, IDENT, EOF}},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if len(tokens) != len(tt.types) {
			t.Errorf("Tokenize(%q) = %v, want %d tokens", tt.input, tokens, len(tt.types))
			continue
		}
		for i, tok := range tokens {
			if tok.Type != tt.types[i] {
				t.Errorf("Tokenize(%q)[%d] = %s, want %s", tt.input, i, tok.Type, tt.types[i])
			}
		}
	}
}

func TestIntegerValues(t *testing.T) {
	tokens, err := Tokenize("0 007 2147483647")
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{0, 7, 2147483647}
	for i, w := range want {
		if tokens[i].Int != w {
			t.Errorf("token %d = %d, want %d", i, tokens[i].Int, w)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"1 + $", 5},
		{"a;", 2},
		{"2147483648", 1},
		{"1 + 99999999999", 5},
		{`"x"`, 1},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", tt.input)
			continue
		}
		if utils.KindOf(err) != utils.ParseError {
			t.Errorf("Tokenize(%q): error kind = %v, want parse error", tt.input, utils.KindOf(err))
		}
		ce := err.(*utils.CompilerError)
		if ce.Coluna != tt.column {
			t.Errorf("Tokenize(%q): column = %d, want %d", tt.input, ce.Coluna, tt.column)
		}
	}
}

func TestNextAfterEOF(t *testing.T) {
	l := New("x")
	if tok, _ := l.Next(); tok.Type != IDENT {
		t.Fatalf("first token = %s, want IDENT", tok.Type)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil || tok.Type != EOF {
			t.Fatalf("Next() after end = %v, %v; want EOF", tok, err)
		}
	}
}

func TestNewAtPosition(t *testing.T) {
	l := NewAt("  y", NovaPosicao(7, 9, 0))
	tok, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Position.Line != 7 || tok.Position.Column != 11 {
		t.Errorf("position = %s, want line 7, column 11", tok.Position)
	}
}
