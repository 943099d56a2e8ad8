package parser

import (
	"strings"

	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/lexer"
	"github.com/khevencolino/mini/internal/utils"
)

const (
	keywordLet   = "let"
	keywordPrint = "print"
	commentStart = "//"
)

// Parser reconhece o programa linha a linha
type Parser struct {
	linhas []string
}

// NovoParser cria um novo analisador sintático sobre o código fonte
func NovoParser(src string) *Parser {
	return &Parser{linhas: strings.Split(src, "\n")}
}

// Parse é um atalho para NovoParser(src).AnalisarPrograma()
func Parse(src string) (*Program, error) {
	return NovoParser(src).AnalisarPrograma()
}

// AnalisarPrograma analisa todas as linhas; o primeiro erro interrompe a análise
func (p *Parser) AnalisarPrograma() (*Program, error) {
	programa := &Program{}

	for i, bruta := range p.linhas {
		numero := i + 1
		linha := strings.TrimSpace(bruta)
		if linha == "" || strings.HasPrefix(linha, commentStart) {
			continue
		}

		// coluna (1-based) do primeiro caractere não branco da linha
		recuo := strings.Index(bruta, linha) + 1

		stmt, err := p.analisarStatement(linha, numero, recuo)
		if err != nil {
			return nil, err
		}
		debug.Printf("  linha %d: %s\n", numero, stmt)
		programa.Statements = append(programa.Statements, stmt)
	}

	return programa, nil
}

// analisarStatement despacha pela palavra-chave inicial da linha
func (p *Parser) analisarStatement(linha string, numero, recuo int) (Statement, error) {
	c := &cursor{texto: linha}
	palavra := c.identificador()

	if !c.espaco() {
		return nil, erroSintaxe(numero, linha)
	}

	switch palavra {
	case keywordLet:
		return p.analisarLet(c, linha, numero, recuo)
	case keywordPrint:
		return p.analisarPrint(c, linha, numero)
	default:
		return nil, erroSintaxe(numero, linha)
	}
}

// analisarLet reconhece: let <ident> = <rhs> ;
func (p *Parser) analisarLet(c *cursor, linha string, numero, recuo int) (Statement, error) {
	nome := c.identificador()
	if nome == "" {
		return nil, erroSintaxe(numero, linha)
	}
	c.pularEspacos()
	if !c.aceitar('=') {
		return nil, erroSintaxe(numero, linha)
	}

	// o lado direito vai até o último ';' da linha, que precisa ser o fim dela
	resto := c.restante()
	if !strings.HasSuffix(resto, ";") || strings.TrimSpace(resto) == ";" {
		return nil, erroSintaxe(numero, linha)
	}
	bruto := resto[:len(resto)-1]
	rhs := strings.TrimSpace(bruto)
	coluna := recuo + c.pos + strings.Index(bruto, rhs)

	if isStringLiteral(rhs) {
		texto, err := Unquote(rhs)
		if err != nil {
			e := utils.NewParseError(numero, coluna, "bad string literal")
			e.Err = err
			return nil, e
		}
		pos := lexer.NovaPosicao(numero, coluna, 0)
		return &LetStatement{Name: nome, Value: &StringLiteral{Value: texto, Position: pos}, Linha: numero}, nil
	}

	if debug.Enabled {
		if tokens, err := lexer.Tokenize(rhs); err == nil {
			debug.Print(lexer.ImprimirTokens(tokens))
		}
	}

	expr, err := ParseExpression(rhs, numero, coluna)
	if err != nil {
		return nil, err
	}
	return &LetStatement{Name: nome, Value: expr, Linha: numero}, nil
}

// analisarPrint reconhece: print <ident> ;
func (p *Parser) analisarPrint(c *cursor, linha string, numero int) (Statement, error) {
	nome := c.identificador()
	if nome == "" {
		return nil, erroSintaxe(numero, linha)
	}
	c.pularEspacos()
	if !c.aceitar(';') || strings.TrimSpace(c.restante()) != "" {
		return nil, erroSintaxe(numero, linha)
	}
	return &PrintStatement{Name: nome, Linha: numero}, nil
}

func erroSintaxe(numero int, linha string) error {
	e := utils.NewParseError(numero, 0, "unrecognized statement")
	e.Detalhes = linha
	return e
}

// cursor percorre uma linha já sem espaços nas pontas
type cursor struct {
	texto string
	pos   int
}

// identificador consome [A-Za-z_][A-Za-z0-9_]* e devolve "" se não houver
func (c *cursor) identificador() string {
	inicio := c.pos
	if c.pos < len(c.texto) && isIdentStart(c.texto[c.pos]) {
		c.pos++
		for c.pos < len(c.texto) && isIdentPart(c.texto[c.pos]) {
			c.pos++
		}
	}
	return c.texto[inicio:c.pos]
}

// espaco consome um ou mais espaços; falso se não houver nenhum
func (c *cursor) espaco() bool {
	inicio := c.pos
	c.pularEspacos()
	return c.pos > inicio
}

func (c *cursor) pularEspacos() {
	for c.pos < len(c.texto) && isSpace(c.texto[c.pos]) {
		c.pos++
	}
}

func (c *cursor) aceitar(b byte) bool {
	if c.pos < len(c.texto) && c.texto[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) restante() string { return c.texto[c.pos:] }

func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || (c >= '0' && c <= '9') }
func isSpace(c byte) bool      { return c == ' ' || c == '\t' || c == '\r' || c == '\f' }
