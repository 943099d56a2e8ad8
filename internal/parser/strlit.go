package parser

import (
	"fmt"
	"strings"
)

// isStringLiteral informa se o lado direito de um let é um literal entre aspas
func isStringLiteral(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote remove as aspas delimitadoras e resolve os escapes \n, \t, \" e \\.
// Qualquer outro escape, ou uma barra invertida no fim, é erro.
func Unquote(s string) (string, error) {
	if !isStringLiteral(s) {
		return "", fmt.Errorf("not a string literal")
	}
	s = s[1 : len(s)-1]

	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("dangling backslash")
		}
		i++
		switch s[i] {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		default:
			return "", fmt.Errorf("unsupported escape \\%c", s[i])
		}
	}
	return out.String(), nil
}
