package toolchain

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/mini/internal/utils"
)

// EntryPoint é o símbolo que o módulo precisa definir
const EntryPoint = "main"

// Verify checa invariantes estruturais do módulo antes da emissão. Uma falha
// aqui é defeito do gerador, não erro do programa de entrada.
func Verify(m *ir.Module) error {
	declaradas := make(map[*ir.Func]bool, len(m.Funcs))
	var entrada *ir.Func
	for _, f := range m.Funcs {
		declaradas[f] = true
		if f.Name() == EntryPoint {
			entrada = f
		}
	}
	if entrada == nil || len(entrada.Blocks) == 0 {
		return utils.NewVerificationError("module has no definition of @%s", EntryPoint)
	}
	if !entrada.Sig.RetType.Equal(types.I32) {
		return utils.NewVerificationError("@%s must return i32, returns %s", EntryPoint, entrada.Sig.RetType)
	}

	for _, f := range m.Funcs {
		for _, b := range f.Blocks {
			if b.Term == nil {
				return utils.NewVerificationError("block %s in @%s has no terminator", b.Ident(), f.Name())
			}
			for _, inst := range b.Insts {
				if err := verificarInstrucao(inst, declaradas); err != nil {
					return err
				}
			}
			if ret, ok := b.Term.(*ir.TermRet); ok {
				if err := verificarRetorno(f, ret); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func verificarInstrucao(inst ir.Instruction, declaradas map[*ir.Func]bool) error {
	switch i := inst.(type) {
	case *ir.InstCall:
		callee, ok := i.Callee.(*ir.Func)
		if !ok || !declaradas[callee] {
			return utils.NewVerificationError("call to undeclared function %s", i.Callee.Ident())
		}
		n := len(callee.Sig.Params)
		if len(i.Args) < n || (!callee.Sig.Variadic && len(i.Args) != n) {
			return utils.NewVerificationError("call to @%s with %d arguments, want %d", callee.Name(), len(i.Args), n)
		}
		for k := 0; k < n; k++ {
			if !i.Args[k].Type().Equal(callee.Sig.Params[k]) {
				return utils.NewVerificationError("argument %d of call to @%s has type %s, want %s",
					k+1, callee.Name(), i.Args[k].Type(), callee.Sig.Params[k])
			}
		}
	case *ir.InstStore:
		if err := verificarPonteiro(i.Dst, i.Src.Type(), "store"); err != nil {
			return err
		}
	case *ir.InstLoad:
		if err := verificarPonteiro(i.Src, i.ElemType, "load"); err != nil {
			return err
		}
	case *ir.InstAdd:
		return mesmoTipo("add", i.X, i.Y)
	case *ir.InstSub:
		return mesmoTipo("sub", i.X, i.Y)
	case *ir.InstMul:
		return mesmoTipo("mul", i.X, i.Y)
	case *ir.InstSDiv:
		return mesmoTipo("sdiv", i.X, i.Y)
	case *ir.InstICmp:
		return mesmoTipo("icmp", i.X, i.Y)
	case *ir.InstSelect:
		return mesmoTipo("select", i.ValueTrue, i.ValueFalse)
	}
	return nil
}

func verificarPonteiro(ptr value.Value, elem types.Type, op string) error {
	pt, ok := ptr.Type().(*types.PointerType)
	if !ok {
		return utils.NewVerificationError("%s through non-pointer %s", op, ptr.Ident())
	}
	if !pt.ElemType.Equal(elem) {
		return utils.NewVerificationError("%s of %s through %s", op, elem, pt)
	}
	return nil
}

func verificarRetorno(f *ir.Func, ret *ir.TermRet) error {
	if ret.X == nil {
		if !f.Sig.RetType.Equal(types.Void) {
			return utils.NewVerificationError("@%s returns void, want %s", f.Name(), f.Sig.RetType)
		}
		return nil
	}
	if !ret.X.Type().Equal(f.Sig.RetType) {
		return utils.NewVerificationError("@%s returns %s, want %s", f.Name(), ret.X.Type(), f.Sig.RetType)
	}
	return nil
}

func mesmoTipo(op string, x, y value.Value) error {
	if !x.Type().Equal(y.Type()) {
		return utils.NewVerificationError("%s with mismatched operand types %s and %s", op, x.Type(), y.Type())
	}
	return nil
}
