//go:build windows

package linker

// MarkExecutable não faz nada no Windows; a extensão define o que é executável
func MarkExecutable(string) error { return nil }
