// Package toolchaintest fornece um Runner falso para testes que não podem
// depender de llc, gcc ou ld instalados.
package toolchaintest

import (
	"errors"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/khevencolino/mini/internal/toolchain"
)

// Call registra uma execução feita pelo Runner
type Call struct {
	Name  string
	Args  []string
	Stdin string
}

// Base devolve o nome do executável sem diretório
func (c Call) Base() string { return filepath.Base(c.Name) }

// Runner grava as chamadas e responde com valores programados
type Runner struct {
	Calls []Call

	// Paths mapeia nomes para o caminho devolvido por LookPath; nomes ausentes não existem
	Paths map[string]string
	// Outputs mapeia o nome base do comando para a saída de Output
	Outputs map[string]string
	// Fail faz Run/Output falharem para esses nomes base
	Fail map[string]error
	// OnRun, se definido, é chamado em cada Run (por exemplo, para criar o arquivo de saída)
	OnRun func(cmd toolchain.Command) error
}

// New cria um Runner em que todas as ferramentas informadas existem em /usr/bin
func New(tools ...string) *Runner {
	r := &Runner{
		Paths:   make(map[string]string),
		Outputs: make(map[string]string),
		Fail:    make(map[string]error),
	}
	for _, t := range tools {
		r.Paths[t] = "/usr/bin/" + t
	}
	return r
}

func (r *Runner) record(cmd toolchain.Command) {
	c := Call{Name: cmd.Name, Args: append([]string(nil), cmd.Args...)}
	if cmd.Stdin != nil {
		data, _ := io.ReadAll(cmd.Stdin)
		c.Stdin = string(data)
	}
	r.Calls = append(r.Calls, c)
}

func (r *Runner) Run(cmd toolchain.Command) error {
	r.record(cmd)
	if err, ok := r.Fail[filepath.Base(cmd.Name)]; ok {
		return err
	}
	if r.OnRun != nil {
		return r.OnRun(cmd)
	}
	return nil
}

func (r *Runner) Output(cmd toolchain.Command) ([]byte, error) {
	r.record(cmd)
	if err, ok := r.Fail[filepath.Base(cmd.Name)]; ok {
		return nil, err
	}
	return []byte(r.Outputs[filepath.Base(cmd.Name)]), nil
}

func (r *Runner) LookPath(name string) (string, error) {
	if p, ok := r.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// ErrExit simula uma ferramenta que terminou com status diferente de zero
var ErrExit = errors.New("exit status 1")
