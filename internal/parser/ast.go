package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khevencolino/mini/internal/lexer"
)

// Expression representa a interface base para todos os nós de expressão da AST
type Expression interface {
	String() string
	Pos() lexer.Position
	exprNode()
}

// IntLiteral representa um literal inteiro de 32 bits
type IntLiteral struct {
	Value    int32
	Position lexer.Position
}

// VariableRef representa a leitura de uma variável
type VariableRef struct {
	Name     string
	Position lexer.Position
}

// Negate representa o menos unário
type Negate struct {
	Operand  Expression
	Position lexer.Position
}

// Binary representa uma operação aritmética binária
type Binary struct {
	Left     Expression
	Operator Operator
	Right    Expression
	Position lexer.Position // posição do operador
}

// StringLiteral só é válido como lado direito inteiro de um let
type StringLiteral struct {
	Value    string // texto já sem escapes
	Position lexer.Position
}

func (*IntLiteral) exprNode()    {}
func (*VariableRef) exprNode()   {}
func (*Negate) exprNode()        {}
func (*Binary) exprNode()        {}
func (*StringLiteral) exprNode() {}

func (e *IntLiteral) Pos() lexer.Position    { return e.Position }
func (e *VariableRef) Pos() lexer.Position   { return e.Position }
func (e *Negate) Pos() lexer.Position        { return e.Position }
func (e *Binary) Pos() lexer.Position        { return e.Position }
func (e *StringLiteral) Pos() lexer.Position { return e.Position }

func (e *IntLiteral) String() string    { return strconv.Itoa(int(e.Value)) }
func (e *VariableRef) String() string   { return e.Name }
func (e *Negate) String() string        { return fmt.Sprintf("(-%s)", e.Operand) }
func (e *StringLiteral) String() string { return strconv.Quote(e.Value) }

// String retorna representação totalmente parentizada da operação
func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator, e.Right)
}

// Operator representa os operadores binários
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// String retorna representação em string do operador
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Statement é um let ou um print
type Statement interface {
	String() string
	Line() int
	stmtNode()
}

// LetStatement liga um nome ao valor de uma expressão
type LetStatement struct {
	Name  string
	Value Expression
	Linha int
}

// PrintStatement imprime o valor de uma variável seguido de quebra de linha
type PrintStatement struct {
	Name  string
	Linha int
}

func (*LetStatement) stmtNode()   {}
func (*PrintStatement) stmtNode() {}

func (s *LetStatement) Line() int   { return s.Linha }
func (s *PrintStatement) Line() int { return s.Linha }

func (s *LetStatement) String() string   { return fmt.Sprintf("let %s = %s;", s.Name, s.Value) }
func (s *PrintStatement) String() string { return fmt.Sprintf("print %s;", s.Name) }

// Program é a sequência ordenada de comandos; a ordem é a ordem de execução
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Kind é o tipo estático mínimo de um nome ligado
type Kind int

const (
	KindInt Kind = iota
	KindStr
)

func (k Kind) String() string {
	if k == KindStr {
		return "Str"
	}
	return "Int"
}

// InferKind classifica o inicializador de um let: só um literal de string é Str
func InferKind(e Expression) Kind {
	if _, ok := e.(*StringLiteral); ok {
		return KindStr
	}
	return KindInt
}
