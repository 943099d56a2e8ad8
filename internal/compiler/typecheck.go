package compiler

import (
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

// TypeChecker realiza a inferência e checagem dos kinds (Int/Str) de um programa
type TypeChecker struct {
	vars map[string]parser.Kind
}

func NovoTypeChecker() *TypeChecker {
	return &TypeChecker{vars: make(map[string]parser.Kind)}
}

// Check percorre os comandos em ordem e devolve o kind final de cada nome
func (t *TypeChecker) Check(prog *parser.Program) (map[string]parser.Kind, error) {
	for _, s := range prog.Statements {
		if err := t.checkStatement(s); err != nil {
			return nil, err
		}
	}
	return t.vars, nil
}

func (t *TypeChecker) checkStatement(s parser.Statement) error {
	switch n := s.(type) {
	case *parser.LetStatement:
		kind := parser.InferKind(n.Value)
		if kind == parser.KindInt {
			if err := t.checkInt(n.Value, n.Linha); err != nil {
				return err
			}
		}
		// o kind é fixado na primeira ligação
		if anterior, ok := t.vars[n.Name]; ok && anterior != kind {
			return utils.NewSemanticError(n.Linha, "type error: `%s` is %s, cannot bind a %s value", n.Name, anterior, kind)
		}
		t.vars[n.Name] = kind
		return nil

	case *parser.PrintStatement:
		if _, ok := t.vars[n.Name]; !ok {
			return utils.NewSemanticError(n.Linha, "undefined variable `%s`", n.Name)
		}
		return nil

	default:
		return utils.NewSemanticError(s.Line(), "unsupported statement %T", s)
	}
}

// checkInt garante que a expressão só envolve valores Int
func (t *TypeChecker) checkInt(e parser.Expression, linha int) error {
	switch n := e.(type) {
	case *parser.IntLiteral:
		return nil
	case *parser.VariableRef:
		kind, ok := t.vars[n.Name]
		if !ok {
			return utils.NewSemanticError(linha, "undefined variable `%s`", n.Name)
		}
		if kind != parser.KindInt {
			return utils.NewSemanticError(linha, "type error: `%s` is a string, expected integer", n.Name)
		}
		return nil
	case *parser.Negate:
		return t.checkInt(n.Operand, linha)
	case *parser.Binary:
		if err := t.checkInt(n.Left, linha); err != nil {
			return err
		}
		return t.checkInt(n.Right, linha)
	case *parser.StringLiteral:
		return utils.NewSemanticError(linha, "type error: string literal not allowed in integer expression")
	default:
		return utils.NewSemanticError(linha, "unsupported expression %T", e)
	}
}
