// Package linker transforma o arquivo objeto em executável chamando o
// linker da plataforma. Há uma implementação por sistema operacional e a
// do host é escolhida em tempo de build (host_*.go).
package linker

import (
	"errors"

	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// ErrUnsupportedPlatform indica um host sem linker configurado
var ErrUnsupportedPlatform = errors.New("unsupported host platform: only macOS, Linux and Windows can link executables")

// Linker produz o executável exe a partir do objeto obj
type Linker interface {
	Name() string
	Link(obj, exe string) error
}

// Tools sobrescreve os nomes das ferramentas; campos vazios usam o padrão da plataforma
type Tools struct {
	CC   string // driver C (Linux)
	LD   string // linker (Linux e macOS)
	Link string // link.exe (Windows)
}

// Host devolve o linker da plataforma em que o compilador foi construído
func Host(tools Tools, runner toolchain.Runner) (Linker, error) {
	return hostLinker(tools, runner)
}

func orDefault(valor, padrao string) string {
	if valor == "" {
		return padrao
	}
	return valor
}

// executar roda o comando e converte qualquer falha em ToolchainError
func executar(runner toolchain.Runner, nome string, args ...string) error {
	if err := runner.Run(toolchain.Command{Name: nome, Args: args}); err != nil {
		return utils.NewToolchainError(err, "%s link failed", nome)
	}
	return nil
}
