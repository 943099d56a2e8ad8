package backends

import "github.com/khevencolino/mini/internal/parser"

// Backend transforma um programa já checado em um artefato
type Backend interface {
	Compile(prog *parser.Program, output string) (*CompilationResult, error)
	Name() string
}

type CompilationResult struct {
	OutputFile string
	ObjectFile string // vazio quando o backend não gera objeto
	Success    bool
	Message    string
}

// Dividir é a divisão truncada usada por todos os backends: x / 0 vale 0 e
// MinInt32 / -1 dá a volta para MinInt32.
func Dividir(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	if b == -1 {
		return -a
	}
	return a / b
}
