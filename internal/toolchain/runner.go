package toolchain

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/khevencolino/mini/internal/debug"
)

// Command descreve a execução de uma ferramenta externa
type Command struct {
	Name  string
	Args  []string
	Stdin io.Reader
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executa ferramentas externas. Existe para que o emissor e os
// linkers possam ser testados sem uma toolchain instalada.
type Runner interface {
	// Run executa o comando e espera o fim; status diferente de zero é erro
	Run(cmd Command) error
	// Output executa o comando e devolve a saída padrão
	Output(cmd Command) ([]byte, error)
	// LookPath procura um executável no PATH
	LookPath(name string) (string, error)
}

// ExecRunner é o Runner que usa os/exec
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner cria um runner que repassa a saída das ferramentas para o terminal
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(cmd Command) error {
	debug.Printf("  $ %s\n", cmd)
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

func (r *ExecRunner) Output(cmd Command) ([]byte, error) {
	debug.Printf("  $ %s\n", cmd)
	var stderr bytes.Buffer
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.Stderr = &stderr
	out, err := c.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", cmd.Name, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return out, nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
