//go:build windows

package linker

import "github.com/khevencolino/mini/internal/toolchain"

func hostLinker(tools Tools, runner toolchain.Runner) (Linker, error) {
	return NewMSVC(tools, runner), nil
}
