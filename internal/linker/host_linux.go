//go:build linux

package linker

import "github.com/khevencolino/mini/internal/toolchain"

func hostLinker(tools Tools, runner toolchain.Runner) (Linker, error) {
	return NewGNU(tools, runner), nil
}
