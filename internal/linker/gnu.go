package linker

import (
	"github.com/khevencolino/mini/internal/debug"
	"github.com/khevencolino/mini/internal/toolchain"
)

// GNU liga no Linux: prefere um driver C e cai para ld.lld ou ld
type GNU struct {
	CC     string
	LD     string // vazio: ld.lld se existir, senão ld
	Runner toolchain.Runner
}

func NewGNU(tools Tools, runner toolchain.Runner) *GNU {
	return &GNU{CC: orDefault(tools.CC, "gcc"), LD: tools.LD, Runner: runner}
}

func (g *GNU) Name() string { return "gnu" }

func (g *GNU) Link(obj, exe string) error {
	if cc, err := g.Runner.LookPath(g.CC); err == nil {
		debug.Printf("Linkando com %s...\n", cc)
		return executar(g.Runner, cc, obj, "-o", exe, "-lc")
	}

	ld := g.LD
	if ld == "" {
		ld = "ld"
		if lld, err := g.Runner.LookPath("ld.lld"); err == nil {
			ld = lld
		}
	}
	debug.Printf("%s não encontrado, linkando com %s...\n", g.CC, ld)
	return executar(g.Runner, ld, obj, "-o", exe, "-lc")
}
