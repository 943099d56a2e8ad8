package toolchain

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"github.com/khevencolino/mini/internal/utils"
)

// moduloValido monta o equivalente a `let x = 7; print x;`
func moduloValido() *ir.Module {
	m := ir.NewModule()
	printf := m.NewFunc("printf", types.I32, ir.NewParam("format", types.NewPointer(types.I8)))
	printf.Sig.Variadic = true
	fmtInt := m.NewGlobalDef(".fmt_int", constant.NewCharArrayFromString("%d\n\x00"))

	main := m.NewFunc("main", types.I32)
	entry := main.NewBlock("entry")
	ptr := entry.NewGetElementPtr(fmtInt.ContentType, fmtInt,
		constant.NewInt(types.I64, 0), constant.NewInt(types.I64, 0))
	x := entry.NewAlloca(types.I32)
	entry.NewStore(constant.NewInt(types.I32, 7), x)
	v := entry.NewLoad(types.I32, x)
	entry.NewCall(printf, ptr, v)
	entry.NewRet(constant.NewInt(types.I32, 0))
	return m
}

func TestVerifyValid(t *testing.T) {
	if err := Verify(moduloValido()); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name    string
		quebrar func(m *ir.Module)
	}{
		{"no main", func(m *ir.Module) {
			m.Funcs = m.Funcs[:1]
		}},
		{"main declared only", func(m *ir.Module) {
			m.Funcs[1].Blocks = nil
		}},
		{"missing terminator", func(m *ir.Module) {
			m.Funcs[1].Blocks[0].Term = nil
		}},
		{"main returns void", func(m *ir.Module) {
			m.Funcs[1].Sig.RetType = types.Void
		}},
		{"wrong return type", func(m *ir.Module) {
			m.Funcs[1].Blocks[0].Term = ir.NewRet(constant.NewInt(types.I64, 0))
		}},
		{"undeclared callee", func(m *ir.Module) {
			outro := ir.NewModule().NewFunc("puts", types.I32)
			m.Funcs[1].Blocks[0].NewCall(outro)
		}},
		{"store through wrong pointer", func(m *ir.Module) {
			b := m.Funcs[1].Blocks[0]
			p := b.NewAlloca(types.I8)
			b.Insts = append(b.Insts, &ir.InstStore{Src: constant.NewInt(types.I32, 1), Dst: p})
		}},
		{"mismatched add", func(m *ir.Module) {
			b := m.Funcs[1].Blocks[0]
			b.NewAdd(constant.NewInt(types.I32, 1), constant.NewInt(types.I64, 1))
		}},
		{"missing printf argument type", func(m *ir.Module) {
			b := m.Funcs[1].Blocks[0]
			b.NewCall(m.Funcs[0], constant.NewInt(types.I32, 0))
		}},
	}
	for _, tt := range tests {
		m := moduloValido()
		tt.quebrar(m)
		err := Verify(m)
		if err == nil {
			t.Errorf("%s: Verify succeeded, want error", tt.name)
			continue
		}
		if utils.KindOf(err) != utils.VerificationError {
			t.Errorf("%s: kind = %v, want VerificationError", tt.name, utils.KindOf(err))
		}
	}
}
