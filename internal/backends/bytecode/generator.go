package bytecode

import (
	"io"
	"os"

	"github.com/khevencolino/mini/internal/backends"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

type variavel struct {
	slot int
	kind parser.Kind
}

// BytecodeBackend compila o programa para bytecode de pilha e o executa na VM
type BytecodeBackend struct {
	Saida     io.Writer
	chunk     *Chunk
	variaveis map[string]variavel // nome -> slot atual
}

func NewBytecodeBackend(saida io.Writer) *BytecodeBackend {
	if saida == nil {
		saida = os.Stdout
	}
	return &BytecodeBackend{Saida: saida}
}

func (b *BytecodeBackend) Name() string { return "vm" }

// Compile gera o bytecode e executa; output é ignorado
func (b *BytecodeBackend) Compile(prog *parser.Program, output string) (*backends.CompilationResult, error) {
	chunk, err := b.Gerar(prog)
	if err != nil {
		return nil, err
	}
	if err := NewVM(b.Saida).Execute(chunk); err != nil {
		return nil, err
	}
	return &backends.CompilationResult{Success: true}, nil
}

// Gerar traduz o programa para um Chunk. Religar um nome usa um slot novo.
func (b *BytecodeBackend) Gerar(prog *parser.Program) (*Chunk, error) {
	debug.Printf("Compilando para Bytecode...\n")
	b.chunk = &Chunk{}
	b.variaveis = make(map[string]variavel)

	for i, stmt := range prog.Statements {
		debug.Printf("  Processando statement %d...\n", i+1)
		if err := b.gerarStatement(stmt); err != nil {
			return nil, err
		}
	}
	b.emit(OP_HALT, 0, 0)
	return b.chunk, nil
}

func (b *BytecodeBackend) gerarStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		kind := parser.InferKind(s.Value)
		if anterior, ok := b.variaveis[s.Name]; ok && anterior.kind != kind {
			return utils.NewSemanticError(s.Linha, "type error: `%s` is %s, cannot bind a %s value", s.Name, anterior.kind, kind)
		}
		if lit, ok := s.Value.(*parser.StringLiteral); ok {
			b.chunk.Strings = append(b.chunk.Strings, lit.Value)
			b.emit(OP_STR, int32(len(b.chunk.Strings)-1), s.Linha)
		} else if err := b.gerarExpressao(s.Value, s.Linha); err != nil {
			return err
		}
		slot := b.chunk.Slots
		b.chunk.Slots++
		b.variaveis[s.Name] = variavel{slot: slot, kind: kind}
		b.emit(OP_STORE, int32(slot), s.Linha)
		return nil

	case *parser.PrintStatement:
		v, ok := b.variaveis[s.Name]
		if !ok {
			return utils.NewSemanticError(s.Linha, "undefined variable `%s`", s.Name)
		}
		b.emit(OP_LOAD, int32(v.slot), s.Linha)
		if v.kind == parser.KindStr {
			b.emit(OP_PRINT_STR, 0, s.Linha)
		} else {
			b.emit(OP_PRINT_INT, 0, s.Linha)
		}
		return nil

	default:
		return utils.NewSemanticError(stmt.Line(), "unsupported statement %T", stmt)
	}
}

func (b *BytecodeBackend) gerarExpressao(e parser.Expression, linha int) error {
	switch n := e.(type) {
	case *parser.IntLiteral:
		b.emit(OP_CONST, n.Value, linha)
		return nil

	case *parser.VariableRef:
		v, ok := b.variaveis[n.Name]
		if !ok {
			return utils.NewSemanticError(linha, "undefined variable `%s`", n.Name)
		}
		if v.kind != parser.KindInt {
			return utils.NewSemanticError(linha, "type error: `%s` is a string, expected integer", n.Name)
		}
		b.emit(OP_LOAD, int32(v.slot), linha)
		return nil

	case *parser.Negate:
		if err := b.gerarExpressao(n.Operand, linha); err != nil {
			return err
		}
		b.emit(OP_NEG, 0, linha)
		return nil

	case *parser.Binary:
		if err := b.gerarExpressao(n.Left, linha); err != nil {
			return err
		}
		if err := b.gerarExpressao(n.Right, linha); err != nil {
			return err
		}
		switch n.Operator {
		case parser.Add:
			b.emit(OP_ADD, 0, linha)
		case parser.Sub:
			b.emit(OP_SUB, 0, linha)
		case parser.Mul:
			b.emit(OP_MUL, 0, linha)
		case parser.Div:
			b.emit(OP_DIV, 0, linha)
		default:
			return utils.NewSemanticError(linha, "unknown operator %s", n.Operator)
		}
		return nil

	case *parser.StringLiteral:
		return utils.NewSemanticError(linha, "type error: string literal not allowed in integer expression")

	default:
		return utils.NewSemanticError(linha, "unsupported expression %T", e)
	}
}

func (b *BytecodeBackend) emit(op OpCode, operand int32, line int) {
	b.chunk.Code = append(b.chunk.Code, Instruction{OpCode: op, Operand: operand, Line: line})
}
