//go:build !windows

package linker

import (
	"os"

	"github.com/khevencolino/mini/internal/utils"
)

// MarkExecutable aplica o modo 0755 ao executável gerado
func MarkExecutable(exe string) error {
	if err := os.Chmod(exe, 0o755); err != nil {
		return utils.NewToolchainError(err, "cannot make %s executable", exe)
	}
	return nil
}
