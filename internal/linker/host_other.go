//go:build !linux && !darwin && !windows

package linker

import "github.com/khevencolino/mini/internal/toolchain"

func hostLinker(Tools, toolchain.Runner) (Linker, error) {
	return nil, ErrUnsupportedPlatform
}
