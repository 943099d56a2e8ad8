package toolchain

import (
	"fmt"
	"runtime"
)

// Triple devolve o target triple LLVM para um par GOOS/GOARCH
func Triple(goos, goarch string) (string, error) {
	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return arch + "-unknown-linux-gnu", nil
	case "darwin":
		// o ld da Apple e o llc usam "arm64" para aarch64
		if arch == "aarch64" {
			arch = "arm64"
		}
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// HostTriple devolve o target triple da máquina que executa o compilador
func HostTriple() (string, error) {
	return Triple(runtime.GOOS, runtime.GOARCH)
}
