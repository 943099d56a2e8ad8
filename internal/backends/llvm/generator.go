package llvm

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/utils"
)

const (
	formatoInteiro = "%d\n"
	formatoTexto   = "%s\n"
)

var i8Ptr = types.NewPointer(types.I8)

// slot é a posição de armazenamento de uma variável e o seu kind
type slot struct {
	alloca *ir.InstAlloca
	kind   parser.Kind
}

// symbolTable mapeia nomes para slots; vive apenas durante uma geração
type symbolTable struct {
	slots map[string]slot
	count int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{slots: make(map[string]slot)}
}

func (s *symbolTable) lookup(nome string) (slot, bool) {
	sl, ok := s.slots[nome]
	return sl, ok
}

// bind liga nome a um slot novo; religar o mesmo nome sobrescreve a ligação anterior
func (s *symbolTable) bind(nome string, sl slot) {
	s.slots[nome] = sl
	s.count++
}

// Generator baixa a AST para um módulo LLVM IR com uma única função main
type Generator struct {
	triple   string
	module   *ir.Module
	block    *ir.Block
	printf   *ir.Func
	fmtInt   value.Value
	fmtStr   value.Value
	symbols  *symbolTable
	strCount int
}

// NewGenerator cria um gerador para o target triple informado
func NewGenerator(triple string) *Generator {
	return &Generator{triple: triple}
}

// Generate constrói o módulo para o programa. Cada chamada começa com uma
// tabela de símbolos vazia.
func (g *Generator) Generate(prog *parser.Program) (*ir.Module, error) {
	debug.Printf("Gerando LLVM IR para %s...\n", g.triple)

	g.module = ir.NewModule()
	g.module.SourceFilename = "mini"
	g.module.TargetTriple = g.triple
	g.symbols = newSymbolTable()
	g.strCount = 0

	// declare i32 @printf(i8*, ...)
	g.printf = g.module.NewFunc("printf", types.I32, ir.NewParam("format", i8Ptr))
	g.printf.Sig.Variadic = true

	fmtIntGlobal := g.novaString(".fmt_int", formatoInteiro)
	fmtStrGlobal := g.novaString(".fmt_str", formatoTexto)

	mainFn := g.module.NewFunc("main", types.I32)
	g.block = mainFn.NewBlock("entry")
	g.fmtInt = g.ponteiroString(fmtIntGlobal)
	g.fmtStr = g.ponteiroString(fmtStrGlobal)

	for i, stmt := range prog.Statements {
		debug.Printf("  Processando statement %d (linha %d)...\n", i+1, stmt.Line())
		if err := g.genStatement(stmt); err != nil {
			return nil, err
		}
	}

	g.block.NewRet(constant.NewInt(types.I32, 0))
	return g.module, nil
}

func (g *Generator) genStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		return g.genLet(s)
	case *parser.PrintStatement:
		return g.genPrint(s)
	default:
		return utils.NewSemanticError(stmt.Line(), "unsupported statement %T", stmt)
	}
}

func (g *Generator) genLet(s *parser.LetStatement) error {
	kind := parser.InferKind(s.Value)
	if anterior, ok := g.symbols.lookup(s.Name); ok && anterior.kind != kind {
		return utils.NewSemanticError(s.Linha, "type error: `%s` is %s, cannot bind a %s value", s.Name, anterior.kind, kind)
	}

	switch kind {
	case parser.KindInt:
		v, err := g.genInt(s.Value, s.Linha)
		if err != nil {
			return err
		}
		alloca := g.block.NewAlloca(types.I32)
		alloca.SetName(g.nomeSlot(s.Name))
		g.block.NewStore(v, alloca)
		g.symbols.bind(s.Name, slot{alloca: alloca, kind: parser.KindInt})

	case parser.KindStr:
		lit, ok := s.Value.(*parser.StringLiteral)
		if !ok {
			return utils.NewSemanticError(s.Linha, "type error: expected string literal")
		}
		global := g.novaString(fmt.Sprintf(".str%d", g.strCount), lit.Value)
		g.strCount++
		ptr := g.ponteiroString(global)
		alloca := g.block.NewAlloca(i8Ptr)
		alloca.SetName(g.nomeSlot(s.Name))
		g.block.NewStore(ptr, alloca)
		g.symbols.bind(s.Name, slot{alloca: alloca, kind: parser.KindStr})
	}
	return nil
}

func (g *Generator) genPrint(s *parser.PrintStatement) error {
	sl, ok := g.symbols.lookup(s.Name)
	if !ok {
		return utils.NewSemanticError(s.Linha, "undefined variable `%s`", s.Name)
	}

	switch sl.kind {
	case parser.KindStr:
		v := g.block.NewLoad(i8Ptr, sl.alloca)
		g.block.NewCall(g.printf, g.fmtStr, v)
	default:
		v := g.block.NewLoad(types.I32, sl.alloca)
		g.block.NewCall(g.printf, g.fmtInt, v)
	}
	return nil
}

// genInt gera o valor i32 de uma expressão, checando os kinds pelo caminho
func (g *Generator) genInt(e parser.Expression, linha int) (value.Value, error) {
	switch n := e.(type) {
	case *parser.IntLiteral:
		return constant.NewInt(types.I32, int64(n.Value)), nil

	case *parser.VariableRef:
		sl, ok := g.symbols.lookup(n.Name)
		if !ok {
			return nil, utils.NewSemanticError(linha, "undefined variable `%s`", n.Name)
		}
		if sl.kind != parser.KindInt {
			return nil, utils.NewSemanticError(linha, "type error: `%s` is a string, expected integer", n.Name)
		}
		return g.block.NewLoad(types.I32, sl.alloca), nil

	case *parser.Negate:
		v, err := g.genInt(n.Operand, linha)
		if err != nil {
			return nil, err
		}
		return g.block.NewSub(constant.NewInt(types.I32, 0), v), nil

	case *parser.Binary:
		// operandos avaliados da esquerda para a direita
		esquerda, err := g.genInt(n.Left, linha)
		if err != nil {
			return nil, err
		}
		direita, err := g.genInt(n.Right, linha)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case parser.Add:
			return g.block.NewAdd(esquerda, direita), nil
		case parser.Sub:
			return g.block.NewSub(esquerda, direita), nil
		case parser.Mul:
			return g.block.NewMul(esquerda, direita), nil
		case parser.Div:
			return g.genDiv(esquerda, direita), nil
		}
		return nil, utils.NewSemanticError(linha, "unknown operator %s", n.Operator)

	case *parser.StringLiteral:
		return nil, utils.NewSemanticError(linha, "type error: string literal not allowed in integer expression")

	default:
		return nil, utils.NewSemanticError(linha, "unsupported expression %T", e)
	}
}

// genDiv gera divisão com sinal truncada sem comportamento indefinido:
// x / 0 vale 0 e INT32_MIN / -1 dá a volta para INT32_MIN.
func (g *Generator) genDiv(esquerda, direita value.Value) value.Value {
	zero := constant.NewInt(types.I32, 0)
	um := constant.NewInt(types.I32, 1)
	menosUm := constant.NewInt(types.I32, -1)

	ehZero := g.block.NewICmp(enum.IPredEQ, direita, zero)
	ehMenosUm := g.block.NewICmp(enum.IPredEQ, direita, menosUm)
	inseguro := g.block.NewOr(ehZero, ehMenosUm)
	divisor := g.block.NewSelect(inseguro, um, direita)
	quociente := g.block.NewSDiv(esquerda, divisor)
	negado := g.block.NewSub(zero, esquerda)
	resultado := g.block.NewSelect(ehMenosUm, negado, quociente)
	return g.block.NewSelect(ehZero, zero, resultado)
}

// novaString cria uma constante global privada, somente leitura, terminada em NUL
func (g *Generator) novaString(nome, texto string) *ir.Global {
	global := g.module.NewGlobalDef(nome, constant.NewCharArrayFromString(texto+"\x00"))
	global.Linkage = enum.LinkagePrivate
	global.UnnamedAddr = enum.UnnamedAddrUnnamedAddr
	global.Immutable = true
	return global
}

// ponteiroString devolve um i8* para o primeiro caractere da string global
func (g *Generator) ponteiroString(global *ir.Global) value.Value {
	gep := g.block.NewGetElementPtr(global.ContentType, global,
		constant.NewInt(types.I64, 0), constant.NewInt(types.I64, 0))
	gep.InBounds = true
	return gep
}

func (g *Generator) nomeSlot(nome string) string {
	return fmt.Sprintf("%s.%d", nome, g.symbols.count)
}
