package parser

import (
	"github.com/khevencolino/mini/internal/lexer"
	"github.com/khevencolino/mini/internal/utils"
)

// Binding powers do precedence climbing
const (
	bpNone   = 0
	bpPrefix = 9 // menos unário
)

// infixo devolve (left bp, right bp, operador) para tokens de operador binário.
// Right bp maior que left bp torna o operador associativo à esquerda.
func infixo(t lexer.TokenType) (int, int, Operator, bool) {
	switch t {
	case lexer.PLUS:
		return 5, 6, Add, true
	case lexer.MINUS:
		return 5, 6, Sub, true
	case lexer.STAR:
		return 7, 8, Mul, true
	case lexer.SLASH:
		return 7, 8, Div, true
	default:
		return 0, 0, 0, false
	}
}

// ExprParser consome o fluxo de tokens de um Lexer com um token de lookahead
type ExprParser struct {
	lexer  *lexer.Lexer
	atual  lexer.Token
	espiou bool
}

// NewExprParser cria um parser de expressão sobre lex
func NewExprParser(lex *lexer.Lexer) *ExprParser {
	return &ExprParser{lexer: lex}
}

// ParseExpression analisa src como uma expressão completa. linha e coluna
// localizam src no arquivo para os diagnósticos.
func ParseExpression(src string, linha, coluna int) (Expression, error) {
	p := NewExprParser(lexer.NewAt(src, lexer.NovaPosicao(linha, coluna, 0)))
	return p.ParseAll()
}

// ParseAll analisa uma expressão e exige que todo o fluxo tenha sido consumido
func (p *ExprParser) ParseAll() (Expression, error) {
	expr, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	sobra, err := p.espiar()
	if err != nil {
		return nil, err
	}
	if sobra.Type != lexer.EOF {
		return nil, utils.NewParseError(sobra.Position.Line, sobra.Position.Column,
			"unexpected trailing token '%s'", sobra.Value)
	}
	return expr, nil
}

// parseExpr implementa o precedence climbing com limite minBP
func (p *ExprParser) parseExpr(minBP int) (Expression, error) {
	esquerda, err := p.parsePrefixo()
	if err != nil {
		return nil, err
	}

	for {
		token, err := p.espiar()
		if err != nil {
			return nil, err
		}
		leftBP, rightBP, op, ok := infixo(token.Type)
		if !ok || leftBP < minBP {
			break
		}
		p.consumir()

		direita, err := p.parseExpr(rightBP)
		if err != nil {
			return nil, err
		}
		esquerda = &Binary{Left: esquerda, Operator: op, Right: direita, Position: token.Position}
	}

	return esquerda, nil
}

// parsePrefixo analisa átomos (número, variável, parênteses) e o menos unário
func (p *ExprParser) parsePrefixo() (Expression, error) {
	token, err := p.proximo()
	if err != nil {
		return nil, err
	}

	switch token.Type {
	case lexer.INT:
		return &IntLiteral{Value: token.Int, Position: token.Position}, nil

	case lexer.IDENT:
		return &VariableRef{Name: token.Value, Position: token.Position}, nil

	case lexer.MINUS:
		operando, err := p.parseExpr(bpPrefix)
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operando, Position: token.Position}, nil

	case lexer.LPAREN:
		expr, err := p.parseExpr(bpNone)
		if err != nil {
			return nil, err
		}
		fecha, err := p.proximo()
		if err != nil {
			return nil, err
		}
		if fecha.Type != lexer.RPAREN {
			return nil, utils.NewParseError(fecha.Position.Line, fecha.Position.Column,
				"expected ')', found %s", descrever(fecha))
		}
		return expr, nil

	case lexer.EOF:
		return nil, utils.NewParseError(token.Position.Line, token.Position.Column, "expected expression")

	default:
		return nil, utils.NewParseError(token.Position.Line, token.Position.Column,
			"unexpected token %s", descrever(token))
	}
}

func (p *ExprParser) espiar() (lexer.Token, error) {
	if !p.espiou {
		token, err := p.lexer.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		p.atual = token
		p.espiou = true
	}
	return p.atual, nil
}

func (p *ExprParser) proximo() (lexer.Token, error) {
	token, err := p.espiar()
	if err != nil {
		return lexer.Token{}, err
	}
	p.consumir()
	return token, nil
}

func (p *ExprParser) consumir() { p.espiou = false }

func descrever(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "end of expression"
	}
	return "'" + t.Value + "'"
}
