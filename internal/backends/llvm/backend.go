package llvm

import (
	"github.com/khevencolino/mini/internal/backends"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/linker"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// NativeBackend gera o IR, emite o objeto com o llc e liga o executável
type NativeBackend struct {
	Triple  string
	Emitter *toolchain.Emitter
	Linker  linker.Linker
}

func NewNativeBackend(triple string, emitter *toolchain.Emitter, lk linker.Linker) *NativeBackend {
	return &NativeBackend{Triple: triple, Emitter: emitter, Linker: lk}
}

func (n *NativeBackend) Name() string { return "native" }

// Compile produz output e deixa o objeto ao lado dele, mesmo se a ligação falhar
func (n *NativeBackend) Compile(prog *parser.Program, output string) (*backends.CompilationResult, error) {
	m, err := NewGenerator(n.Triple).Generate(prog)
	if err != nil {
		return nil, err
	}

	obj := caminhoObjeto(output)
	if err := utils.CriarDiretorioPai(obj); err != nil {
		return nil, err
	}
	if err := n.Emitter.Emit(m, n.Triple, obj); err != nil {
		return nil, err
	}

	debug.Printf("Ligando %s com %s...\n", output, n.Linker.Name())
	if err := n.Linker.Link(obj, output); err != nil {
		return &backends.CompilationResult{ObjectFile: obj, Message: "object kept at " + obj}, err
	}
	if err := linker.MarkExecutable(output); err != nil {
		return nil, err
	}

	return &backends.CompilationResult{
		OutputFile: output,
		ObjectFile: obj,
		Success:    true,
		Message:    "Built " + output,
	}, nil
}

// caminhoObjeto evita que o objeto sobrescreva uma saída que já termina em .o
func caminhoObjeto(output string) string {
	obj := utils.CaminhoObjeto(output)
	if obj == output {
		return output + ".o"
	}
	return obj
}

// IRBackend escreve o módulo verificado como texto LLVM IR
type IRBackend struct {
	Triple string
}

func NewIRBackend(triple string) *IRBackend {
	return &IRBackend{Triple: triple}
}

func (b *IRBackend) Name() string { return "llvm" }

func (b *IRBackend) Compile(prog *parser.Program, output string) (*backends.CompilationResult, error) {
	m, err := NewGenerator(b.Triple).Generate(prog)
	if err != nil {
		return nil, err
	}
	if err := toolchain.Verify(m); err != nil {
		return nil, err
	}
	if err := utils.EscreverArquivo(output, m.String()); err != nil {
		return nil, err
	}
	debug.Printf("Arquivo LLVM IR gerado em: %s\n", output)

	return &backends.CompilationResult{
		OutputFile: output,
		Success:    true,
		Message:    "Built " + output,
	}, nil
}
