package bytecode

import (
	"fmt"
	"io"

	"github.com/khevencolino/mini/internal/backends"
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/utils"
)

// VM é uma máquina de pilha sobre int32; strings são índices na tabela do Chunk
type VM struct {
	saida io.Writer
	stack []int32
	slots []int32
	pc    int // program counter
}

func NewVM(saida io.Writer) *VM {
	return &VM{saida: saida, stack: make([]int32, 0, 64)}
}

func (vm *VM) Execute(chunk *Chunk) error {
	debug.Printf("Bytecode gerado (%d instruções):\n", len(chunk.Code))
	if debug.Enabled {
		for i, instr := range chunk.Code {
			debug.Printf("  %03d: %s\n", i, instr)
		}
		debug.Println()
	}

	vm.slots = make([]int32, chunk.Slots)
	vm.stack = vm.stack[:0]
	vm.pc = 0

	for vm.pc < len(chunk.Code) {
		instr := chunk.Code[vm.pc]

		switch instr.OpCode {
		case OP_CONST, OP_STR:
			vm.push(instr.Operand)

		case OP_NEG:
			a, err := vm.pop(instr)
			if err != nil {
				return err
			}
			vm.push(-a)

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
			b, err := vm.pop(instr)
			if err != nil {
				return err
			}
			a, err := vm.pop(instr)
			if err != nil {
				return err
			}
			vm.push(aritmetica(instr.OpCode, a, b))

		case OP_LOAD:
			if instr.Operand < 0 || int(instr.Operand) >= len(vm.slots) {
				return vm.falha(instr, "invalid slot %d", instr.Operand)
			}
			vm.push(vm.slots[instr.Operand])

		case OP_STORE:
			value, err := vm.pop(instr)
			if err != nil {
				return err
			}
			if instr.Operand < 0 || int(instr.Operand) >= len(vm.slots) {
				return vm.falha(instr, "invalid slot %d", instr.Operand)
			}
			vm.slots[instr.Operand] = value

		case OP_PRINT_INT:
			value, err := vm.pop(instr)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(vm.saida, "%d\n", value); err != nil {
				return utils.NewToolchainError(err, "cannot write program output")
			}

		case OP_PRINT_STR:
			idx, err := vm.pop(instr)
			if err != nil {
				return err
			}
			if idx < 0 || int(idx) >= len(chunk.Strings) {
				return vm.falha(instr, "invalid string %d", idx)
			}
			if _, err := fmt.Fprintf(vm.saida, "%s\n", chunk.Strings[idx]); err != nil {
				return utils.NewToolchainError(err, "cannot write program output")
			}

		case OP_HALT:
			debug.Printf("Execução concluída!\n")
			return nil

		default:
			return vm.falha(instr, "unknown opcode %d", instr.OpCode)
		}

		vm.pc++
	}

	return nil
}

func aritmetica(op OpCode, a, b int32) int32 {
	switch op {
	case OP_ADD:
		return a + b
	case OP_SUB:
		return a - b
	case OP_MUL:
		return a * b
	default:
		return backends.Dividir(a, b)
	}
}

func (vm *VM) push(value int32) {
	vm.stack = append(vm.stack, value)
}

func (vm *VM) pop(instr Instruction) (int32, error) {
	if len(vm.stack) == 0 {
		return 0, vm.falha(instr, "stack underflow")
	}
	top := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return top, nil
}

// falha indica bytecode malformado, um defeito do gerador
func (vm *VM) falha(instr Instruction, format string, args ...any) error {
	return utils.NewVerificationError("vm at %03d (%s, line %d): %s", vm.pc, instr, instr.Line, fmt.Sprintf(format, args...))
}
