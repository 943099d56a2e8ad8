package linker

import (
	"strings"

	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// versão usada quando sw_vers não informa major/minor
const (
	macosMajorPadrao = "13"
	macosMinorPadrao = "0"
)

// Darwin liga com o ld da Apple contra o SDK do Xcode e a libSystem
type Darwin struct {
	LD     string
	Arch   string // arm64 ou x86_64
	Runner toolchain.Runner
}

func NewDarwin(tools Tools, arch string, runner toolchain.Runner) *Darwin {
	return &Darwin{LD: orDefault(tools.LD, "ld"), Arch: arch, Runner: runner}
}

func (d *Darwin) Name() string { return "ld64" }

func (d *Darwin) Link(obj, exe string) error {
	sdk, err := d.Runner.Output(toolchain.Command{Name: "xcrun", Args: []string{"--sdk", "macosx", "--show-sdk-path"}})
	if err != nil {
		return utils.NewToolchainError(err, "cannot locate the macOS SDK")
	}

	prod, err := d.Runner.Output(toolchain.Command{Name: "sw_vers", Args: []string{"-productVersion"}})
	if err != nil {
		return utils.NewToolchainError(err, "cannot read the macOS version")
	}
	versao := versaoPlataforma(string(prod))

	return executar(d.Runner, d.LD,
		"-o", exe,
		"-arch", d.Arch,
		"-platform_version", "macos", versao, versao,
		"-syslibroot", strings.TrimSpace(string(sdk)),
		"-e", "_main",
		obj,
		"-lSystem",
	)
}

// versaoPlataforma reduz "14.2.1" para "14.2"
func versaoPlataforma(produto string) string {
	partes := strings.Split(strings.TrimSpace(produto), ".")
	major, minor := macosMajorPadrao, macosMinorPadrao
	if len(partes) > 0 && partes[0] != "" {
		major = partes[0]
	}
	if len(partes) > 1 && partes[1] != "" {
		minor = partes[1]
	}
	return major + "." + minor
}

// darwinArch traduz GOARCH para o nome de arquitetura do ld
func darwinArch(goarch string) string {
	if goarch == "arm64" {
		return "arm64"
	}
	return "x86_64"
}
