package linker

import "github.com/khevencolino/mini/internal/toolchain"

// MSVC liga com o link.exe contra o runtime C da Microsoft
type MSVC struct {
	LinkExe string
	Runner  toolchain.Runner
}

func NewMSVC(tools Tools, runner toolchain.Runner) *MSVC {
	return &MSVC{LinkExe: orDefault(tools.Link, "link.exe"), Runner: runner}
}

func (m *MSVC) Name() string { return "msvc" }

func (m *MSVC) Link(obj, exe string) error {
	return executar(m.Runner, m.LinkExe,
		obj,
		"/OUT:"+exe,
		"msvcrt.lib",
		"legacy_stdio_definitions.lib",
	)
}
