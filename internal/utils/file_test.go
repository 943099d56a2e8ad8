package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCaminhoObjeto(t *testing.T) {
	tests := map[string]string{
		"prog":           "prog.o",
		"build/prog.exe": "build/prog.o",
		"out/a.b/prog":   "out/a.b/prog.o",
		"/tmp/hello.bin": "/tmp/hello.o",
	}
	for in, want := range tests {
		if got := CaminhoObjeto(in); got != want {
			t.Errorf("CaminhoObjeto(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscreverELerArquivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "saida.ll")
	if err := EscreverArquivo(path, "conteudo"); err != nil {
		t.Fatal(err)
	}
	got, err := LerArquivo(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "conteudo" {
		t.Errorf("LerArquivo = %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o600 != 0o600 {
		t.Errorf("mode = %v", info.Mode())
	}
}

func TestLerArquivoInexistente(t *testing.T) {
	_, err := LerArquivo(filepath.Join(t.TempDir(), "nada.mini"))
	if KindOf(err) != UsageError {
		t.Errorf("error = %v, want usage error", err)
	}
	if !os.IsNotExist(unwrapAll(err)) {
		t.Errorf("cause of %v is not a missing file", err)
	}
}

func unwrapAll(err error) error {
	for {
		ce, ok := err.(*CompilerError)
		if !ok || ce.Err == nil {
			return err
		}
		err = ce.Err
	}
}
