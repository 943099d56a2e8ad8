package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/mini/internal/backends"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

// valor guardado para cada variável; só um dos campos vale, conforme o kind
type valor struct {
	kind    parser.Kind
	inteiro int32
	texto   string
}

// InterpreterBackend executa o programa diretamente sobre a AST, com a mesma
// aritmética de 32 bits do código nativo
type InterpreterBackend struct {
	Saida     io.Writer
	variaveis map[string]valor
}

func NewInterpreterBackend(saida io.Writer) *InterpreterBackend {
	if saida == nil {
		saida = os.Stdout
	}
	return &InterpreterBackend{Saida: saida}
}

func (i *InterpreterBackend) Name() string { return "interp" }

// Compile interpreta o programa; output é aceito por compatibilidade e ignorado
func (i *InterpreterBackend) Compile(prog *parser.Program, output string) (*backends.CompilationResult, error) {
	debug.Printf("Interpretando diretamente da AST...\n")
	i.variaveis = make(map[string]valor)

	for idx, stmt := range prog.Statements {
		debug.Printf("--- Statement %d (linha %d) ---\n", idx+1, stmt.Line())
		if err := i.executar(stmt); err != nil {
			return nil, err
		}
	}
	return &backends.CompilationResult{Success: true}, nil
}

func (i *InterpreterBackend) executar(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		if lit, ok := s.Value.(*parser.StringLiteral); ok {
			return i.atribuir(s, valor{kind: parser.KindStr, texto: lit.Value})
		}
		v, err := i.avaliar(s.Value, s.Linha)
		if err != nil {
			return err
		}
		return i.atribuir(s, valor{kind: parser.KindInt, inteiro: v})

	case *parser.PrintStatement:
		v, ok := i.variaveis[s.Name]
		if !ok {
			return utils.NewSemanticError(s.Linha, "undefined variable `%s`", s.Name)
		}
		var err error
		if v.kind == parser.KindStr {
			_, err = fmt.Fprintf(i.Saida, "%s\n", v.texto)
		} else {
			_, err = fmt.Fprintf(i.Saida, "%d\n", v.inteiro)
		}
		if err != nil {
			return utils.NewToolchainError(err, "cannot write program output")
		}
		return nil

	default:
		return utils.NewSemanticError(stmt.Line(), "unsupported statement %T", stmt)
	}
}

func (i *InterpreterBackend) atribuir(s *parser.LetStatement, v valor) error {
	if anterior, ok := i.variaveis[s.Name]; ok && anterior.kind != v.kind {
		return utils.NewSemanticError(s.Linha, "type error: `%s` is %s, cannot bind a %s value", s.Name, anterior.kind, v.kind)
	}
	i.variaveis[s.Name] = v
	return nil
}

// avaliar calcula uma expressão inteira; int32 dá a volta no overflow
func (i *InterpreterBackend) avaliar(e parser.Expression, linha int) (int32, error) {
	switch n := e.(type) {
	case *parser.IntLiteral:
		return n.Value, nil

	case *parser.VariableRef:
		v, ok := i.variaveis[n.Name]
		if !ok {
			return 0, utils.NewSemanticError(linha, "undefined variable `%s`", n.Name)
		}
		if v.kind != parser.KindInt {
			return 0, utils.NewSemanticError(linha, "type error: `%s` is a string, expected integer", n.Name)
		}
		return v.inteiro, nil

	case *parser.Negate:
		v, err := i.avaliar(n.Operand, linha)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case *parser.Binary:
		esquerdo, err := i.avaliar(n.Left, linha)
		if err != nil {
			return 0, err
		}
		direito, err := i.avaliar(n.Right, linha)
		if err != nil {
			return 0, err
		}
		switch n.Operator {
		case parser.Add:
			return esquerdo + direito, nil
		case parser.Sub:
			return esquerdo - direito, nil
		case parser.Mul:
			return esquerdo * direito, nil
		case parser.Div:
			return backends.Dividir(esquerdo, direito), nil
		}
		return 0, utils.NewSemanticError(linha, "unknown operator %s", n.Operator)

	case *parser.StringLiteral:
		return 0, utils.NewSemanticError(linha, "type error: string literal not allowed in integer expression")

	default:
		return 0, utils.NewSemanticError(linha, "unsupported expression %T", e)
	}
}
