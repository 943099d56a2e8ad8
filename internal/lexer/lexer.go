package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khevencolino/mini/internal/utils"
)

// Lexer produz tokens sob demanda a partir de uma expressão.
// A sequência é finita e não pode ser reiniciada: depois de EOF, Next devolve EOF para sempre.
type Lexer struct {
	entrada string // Código fonte de entrada
	posicao int    // Posição atual no código
	linha   int    // Linha atual
	coluna  int    // Coluna atual
	fim     bool
}

// New cria um lexer começando na linha 1, coluna 1
func New(entrada string) *Lexer {
	return NewAt(entrada, NovaPosicao(1, 1, 0))
}

// NewAt cria um lexer cuja primeira posição é inicio; usado quando a expressão
// é um trecho de uma linha maior e os diagnósticos devem apontar para a linha original
func NewAt(entrada string, inicio Position) *Lexer {
	return &Lexer{
		entrada: entrada,
		linha:   inicio.Line,
		coluna:  inicio.Column,
	}
}

// Next devolve o próximo token
func (l *Lexer) Next() (Token, error) {
	l.pularEspacos()

	posicaoAtual := l.obterPosicaoAtual()
	if l.fim || !l.temMais() {
		l.fim = true
		return NovoToken(EOF, "", posicaoAtual), nil
	}

	c := l.espiar()
	switch {
	case isDigit(c):
		inicio := l.posicao
		for l.temMais() && isDigit(l.espiar()) {
			l.avancar(1)
		}
		texto := l.entrada[inicio:l.posicao]
		valor, err := strconv.ParseInt(texto, 10, 32)
		if err != nil {
			l.fim = true
			return Token{}, utils.NewParseError(posicaoAtual.Line, posicaoAtual.Column,
				"integer literal %s does not fit in 32 bits", texto)
		}
		token := NovoToken(INT, texto, posicaoAtual)
		token.Int = int32(valor)
		return token, nil

	case isIdentStart(c):
		inicio := l.posicao
		for l.temMais() && isIdentPart(l.espiar()) {
			l.avancar(1)
		}
		return NovoToken(IDENT, l.entrada[inicio:l.posicao], posicaoAtual), nil
	}

	var tipo TokenType
	switch c {
	case '+':
		tipo = PLUS
	case '-':
		tipo = MINUS
	case '*':
		tipo = STAR
	case '/':
		tipo = SLASH
	case '(':
		tipo = LPAREN
	case ')':
		tipo = RPAREN
	default:
		// Caractere inválido: erro em vez de truncar a entrada silenciosamente
		l.fim = true
		return Token{}, utils.NewParseError(posicaoAtual.Line, posicaoAtual.Column,
			"unrecognized character %q", rune(c))
	}
	l.avancar(1)
	return NovoToken(tipo, string(c), posicaoAtual), nil
}

// Tokenizar consome todo o restante da entrada, incluindo o EOF final
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token
	for {
		token, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Tokenize é um atalho para New(entrada).Tokenizar()
func Tokenize(entrada string) ([]Token, error) {
	return New(entrada).Tokenizar()
}

func (l *Lexer) pularEspacos() {
	for l.temMais() && isSpace(l.espiar()) {
		l.avancar(1)
	}
}

// obterPosicaoAtual retorna a posição atual no código fonte
func (l *Lexer) obterPosicaoAtual() Position {
	return NovaPosicao(l.linha, l.coluna, l.posicao)
}

// avancar move a posição do lexer para frente
func (l *Lexer) avancar(comprimento int) {
	for i := 0; i < comprimento; i++ {
		if l.posicao < len(l.entrada) {
			if l.entrada[l.posicao] == '\n' {
				l.linha++
				l.coluna = 1
			} else {
				l.coluna++
			}
			l.posicao++
		}
	}
}

// espiar retorna o caractere atual sem avançar
func (l *Lexer) espiar() byte {
	if l.posicao >= len(l.entrada) {
		return 0
	}
	return l.entrada[l.posicao]
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// isSpace segue a definição ASCII de espaço em branco
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// ImprimirTokens escreve todos os tokens de forma formatada
func ImprimirTokens(tokens []Token) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-12s %-20s\n", "TYPE", "VALUE", "POSITION")
	b.WriteString(strings.Repeat("-", 44))
	b.WriteString("\n")
	for _, token := range tokens {
		if token.Type != EOF {
			fmt.Fprintf(&b, "%-8s %-12s %-20s\n", token.Type, token.Value, token.Position)
		}
	}
	return b.String()
}
