package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifica os erros do compilador
type ErrorKind int

const (
	UsageError ErrorKind = iota + 1
	ParseError
	SemanticError
	VerificationError
	ToolchainError
)

// String retorna o nome do tipo de erro
func (k ErrorKind) String() string {
	switch k {
	case UsageError:
		return "usage error"
	case ParseError:
		return "parse error"
	case SemanticError:
		return "semantic error"
	case VerificationError:
		return "verification error"
	case ToolchainError:
		return "toolchain error"
	default:
		return "error"
	}
}

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Kind     ErrorKind // Fase que produziu o erro
	Mensagem string    // Mensagem de erro
	Linha    int       // Linha onde ocorreu o erro (1-based, 0 se desconhecida)
	Coluna   int       // Coluna onde ocorreu o erro
	Detalhes string    // Detalhes adicionais do erro
	Err      error     // Causa original, se houver
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Kind.String())
	if e.Linha > 0 {
		builder.WriteString(fmt.Sprintf(" at line %d", e.Linha))
		if e.Coluna > 0 {
			builder.WriteString(fmt.Sprintf(", column %d", e.Coluna))
		}
	}
	builder.WriteString(": ")
	builder.WriteString(e.Mensagem)
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

func (e *CompilerError) Unwrap() error { return e.Err }

// NovoErro cria um novo erro do compilador
func NovoErro(kind ErrorKind, mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Kind:     kind,
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

func NewUsageError(format string, args ...any) *CompilerError {
	return NovoErro(UsageError, fmt.Sprintf(format, args...), 0, 0, "")
}

func NewParseError(linha, coluna int, format string, args ...any) *CompilerError {
	return NovoErro(ParseError, fmt.Sprintf(format, args...), linha, coluna, "")
}

func NewSemanticError(linha int, format string, args ...any) *CompilerError {
	return NovoErro(SemanticError, fmt.Sprintf(format, args...), linha, 0, "")
}

func NewVerificationError(format string, args ...any) *CompilerError {
	return NovoErro(VerificationError, fmt.Sprintf(format, args...), 0, 0, "")
}

// NewToolchainError embrulha a falha de uma ferramenta externa
func NewToolchainError(err error, format string, args ...any) *CompilerError {
	e := NovoErro(ToolchainError, fmt.Sprintf(format, args...), 0, 0, "")
	e.Err = err
	return e
}

// KindOf retorna o tipo do primeiro CompilerError na cadeia de err
func KindOf(err error) ErrorKind {
	var ce *CompilerError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// LineOf retorna a linha do primeiro CompilerError na cadeia de err
func LineOf(err error) int {
	var ce *CompilerError
	if errors.As(err, &ce) {
		return ce.Linha
	}
	return 0
}
