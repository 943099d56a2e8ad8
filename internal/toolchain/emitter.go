package toolchain

import (
	"strings"

	"github.com/llir/llvm/ir"

	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/utils"
)

// DefaultLLC é o nome do compilador estático do LLVM procurado no PATH
const DefaultLLC = "llc"

// Emitter baixa um módulo verificado para um arquivo objeto usando o llc
type Emitter struct {
	LLC    string
	Runner Runner
}

// NewEmitter cria um emissor; llc vazio usa DefaultLLC
func NewEmitter(llc string, runner Runner) *Emitter {
	if llc == "" {
		llc = DefaultLLC
	}
	return &Emitter{LLC: llc, Runner: runner}
}

// Emit verifica o módulo e escreve o objeto para triple em objPath, sem otimizações
func (e *Emitter) Emit(m *ir.Module, triple, objPath string) error {
	if err := Verify(m); err != nil {
		return err
	}

	llc, err := e.Runner.LookPath(e.LLC)
	if err != nil {
		return utils.NewToolchainError(err, "cannot find %s", e.LLC)
	}

	debug.Printf("Emitindo objeto %s...\n", objPath)
	cmd := Command{
		Name: llc,
		Args: []string{
			"-filetype=obj",
			"-O0",
			"-mtriple=" + triple,
			"-relocation-model=pic",
			"-o", objPath,
			"-",
		},
		Stdin: strings.NewReader(m.String()),
	}
	if err := e.Runner.Run(cmd); err != nil {
		return utils.NewToolchainError(err, "object emission failed")
	}
	return nil
}
