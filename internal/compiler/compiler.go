package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"

	"github.com/khevencolino/mini/internal/backends"
	"github.com/khevencolino/mini/internal/backends/bytecode"
	"github.com/khevencolino/mini/internal/backends/interpreter"
	"github.com/khevencolino/mini/internal/backends/llvm"
	"github.com/khevencolino/mini/internal/config"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/linker"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// Nomes aceitos por -backend
const (
	BackendNative = "native"
	BackendLLVM   = "llvm"
	BackendInterp = "interp"
	BackendVM     = "vm"
)

// Compiler representa o compilador principal
type Compiler struct {
	backend backends.Backend // Backend que recebe o programa checado
	saida   io.Writer        // Destino de -ast e -dump

	MostrarArvore bool // imprime a árvore de cada statement
	Despejar      bool // imprime o Program com kr/pretty
}

// NovoCompilador cria um compilador que entrega o programa ao backend
func NovoCompilador(backend backends.Backend) *Compiler {
	return &Compiler{backend: backend, saida: os.Stdout}
}

// DefinirSaida troca o destino das impressões de -ast e -dump
func (c *Compiler) DefinirSaida(w io.Writer) { c.saida = w }

// NovoBackend monta o backend pelo nome. O native resolve o linker do host
// antes de qualquer leitura do fonte.
func NovoBackend(nome string, tc *config.Toolchain, runner toolchain.Runner, saidaPrograma io.Writer) (backends.Backend, error) {
	switch nome {
	case BackendInterp:
		return interpreter.NewInterpreterBackend(saidaPrograma), nil

	case BackendVM:
		return bytecode.NewBytecodeBackend(saidaPrograma), nil

	case BackendLLVM:
		triple, err := tc.TargetTriple()
		if err != nil {
			return nil, err
		}
		return llvm.NewIRBackend(triple), nil

	case BackendNative, "":
		lk, err := linker.Host(tc.Tools(), runner)
		if err != nil {
			return nil, err
		}
		triple, err := tc.TargetTriple()
		if err != nil {
			return nil, err
		}
		debug.Printf("Target %s, linker %s\n", triple, lk.Name())
		return llvm.NewNativeBackend(triple, toolchain.NewEmitter(tc.LLC, runner), lk), nil

	default:
		return nil, utils.NewUsageError("unknown backend %q (use %s, %s, %s or %s)", nome, BackendNative, BackendLLVM, BackendInterp, BackendVM)
	}
}

// CompilarArquivo compila o arquivo fonte entrada para saida
func (c *Compiler) CompilarArquivo(entrada, saida string) (*backends.CompilationResult, error) {
	conteudo, err := utils.LerArquivo(entrada)
	if err != nil {
		return nil, err
	}
	debug.Printf("Compilando %s com o backend %s...\n", entrada, c.backend.Name())
	return c.CompilarFonte(conteudo, saida)
}

// CompilarFonte executa o pipeline sobre o texto do programa
func (c *Compiler) CompilarFonte(fonte, saida string) (*backends.CompilationResult, error) {
	programa, err := c.analisarSintaxe(fonte)
	if err != nil {
		return nil, err
	}

	if c.MostrarArvore {
		parser.NovoVisualizador().ImprimirArvore(c.saida, programa)
	}
	if c.Despejar {
		fmt.Fprintf(c.saida, "%# v\n", pretty.Formatter(programa))
	}

	kinds, err := NovoTypeChecker().Check(programa)
	if err != nil {
		return nil, err
	}
	debug.Printf("Kinds: %# v\n", pretty.Formatter(kinds))

	return c.backend.Compile(programa, saida)
}

func (c *Compiler) analisarSintaxe(fonte string) (*parser.Program, error) {
	debug.Printf("Analisando...\n")
	programa, err := parser.NovoParser(fonte).AnalisarPrograma()
	if err != nil {
		return nil, err
	}
	debug.Printf("%d statements\n", len(programa.Statements))
	return programa, nil
}
