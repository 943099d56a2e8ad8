package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	INT    TokenType = iota // Literal inteiro
	IDENT                   // Identificador
	PLUS                    // +
	MINUS                   // -
	STAR                    // *
	SLASH                   // /
	LPAREN                  // (
	RPAREN                  // )
	EOF                     // Fim da entrada
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case INT:
		return "INT"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Texto do token
	Int      int32     // Valor, apenas para INT
	Position Position  // Posição no código fonte
}

// String retorna uma representação em string do token
func (t Token) String() string {
	return fmt.Sprintf("%s('%s') at %s", t.Type, t.Value, t.Position)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}
