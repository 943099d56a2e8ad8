package bytecode

import "fmt"

type OpCode byte

const (
	OP_CONST     OpCode = iota // CONST valor
	OP_STR                     // STR índice na tabela de strings
	OP_NEG                     // NEG
	OP_ADD                     // ADD
	OP_SUB                     // SUB
	OP_MUL                     // MUL
	OP_DIV                     // DIV
	OP_LOAD                    // LOAD slot
	OP_STORE                   // STORE slot
	OP_PRINT_INT               // PRINT_INT
	OP_PRINT_STR               // PRINT_STR
	OP_HALT                    // HALT
)

type Instruction struct {
	OpCode  OpCode
	Operand int32
	Line    int // para debug
}

func (i Instruction) String() string {
	switch i.OpCode {
	case OP_CONST, OP_STR, OP_LOAD, OP_STORE:
		return fmt.Sprintf("%s %d", i.OpCode, i.Operand)
	default:
		return i.OpCode.String()
	}
}

// Chunk é o resultado da compilação: código, strings internadas e número de slots
type Chunk struct {
	Code    []Instruction
	Strings []string
	Slots   int
}

func (op OpCode) String() string {
	switch op {
	case OP_CONST:
		return "CONST"
	case OP_STR:
		return "STR"
	case OP_NEG:
		return "NEG"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	case OP_LOAD:
		return "LOAD"
	case OP_STORE:
		return "STORE"
	case OP_PRINT_INT:
		return "PRINT_INT"
	case OP_PRINT_STR:
		return "PRINT_STR"
	case OP_HALT:
		return "HALT"
	default:
		return "UNKNOWN"
	}
}
