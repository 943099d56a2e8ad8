package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/mini/internal/compiler"
	"github.com/khevencolino/mini/internal/config"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// Códigos de saída
const (
	exitOK   = 0
	exitErro = 1
	exitUso  = 2
)

type opcoes struct {
	entrada   string
	saida     string
	backend   string
	toolchain string
	debug     bool
	ast       bool
	dump      bool
}

func main() {
	os.Exit(executar(os.Args[1:], os.Stdout, os.Stderr))
}

func executar(args []string, stdout, stderr io.Writer) int {
	opts, err := processarArgumentos(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUso
	}

	debug.Enabled = opts.debug
	debug.Output = stderr

	tc, err := config.Load(opts.toolchain)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitErro
	}

	backend, err := compiler.NovoBackend(opts.backend, tc, toolchain.NewExecRunner(), stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if utils.KindOf(err) == utils.UsageError {
			return exitUso
		}
		return exitErro
	}

	c := compiler.NovoCompilador(backend)
	c.DefinirSaida(stdout)
	c.MostrarArvore = opts.ast
	c.Despejar = opts.dump

	resultado, err := c.CompilarArquivo(opts.entrada, opts.saida)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitErro
	}
	if resultado.Message != "" {
		fmt.Fprintln(stdout, resultado.Message)
	}
	return exitOK
}

func processarArgumentos(args []string, stderr io.Writer) (*opcoes, error) {
	opts := &opcoes{}
	fs := flag.NewFlagSet("compiler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { mostrarAjuda(stderr, fs) }

	fs.StringVar(&opts.backend, "backend", compiler.BackendNative, "Backend a ser usado (native, llvm, interp, vm)")
	fs.StringVar(&opts.toolchain, "toolchain", "", "Perfil YAML com as ferramentas e o target triple")
	fs.BoolVar(&opts.debug, "debug", false, "Ativar mensagens de debug")
	fs.BoolVar(&opts.ast, "ast", false, "Mostra a árvore de cada statement")
	fs.BoolVar(&opts.dump, "dump", false, "Mostra o programa analisado")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return nil, utils.NewUsageError("expected <input-file> <output-executable>, got %d arguments", fs.NArg())
	}
	opts.entrada = fs.Arg(0)
	opts.saida = fs.Arg(1)
	return opts, nil
}

func mostrarAjuda(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Compilador Mini

USO:
    compiler [flags] <input-file> <output-executable>

FLAGS:
`)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
BACKENDS DISPONÍVEIS:

native (padrão)
    - Gera LLVM IR, emite o objeto com llc e liga com o linker do sistema
    - Deixa <saida>.o ao lado do executável

llvm
    - Escreve o LLVM IR verificado em <output-executable>

interp
    - Executa o programa direto sobre a AST; a saída é ignorada

vm
    - Compila para bytecode de pilha e executa na VM; a saída é ignorada

EXEMPLOS:
    compiler prog.mini prog
    compiler -backend=llvm prog.mini prog.ll
    compiler -toolchain=toolchain.yaml -debug prog.mini build/prog
`)
}
