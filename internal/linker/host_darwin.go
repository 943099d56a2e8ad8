//go:build darwin

package linker

import (
	"runtime"

	"github.com/khevencolino/mini/internal/toolchain"
)

func hostLinker(tools Tools, runner toolchain.Runner) (Linker, error) {
	return NewDarwin(tools, darwinArch(runtime.GOARCH), runner), nil
}
