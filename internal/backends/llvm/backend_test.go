package llvm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khevencolino/mini/internal/linker"
	"github.com/khevencolino/mini/internal/parser"
	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/toolchain/toolchaintest"
	"github.com/khevencolino/mini/internal/utils"
)

// criarSaida simula llc e o linker escrevendo o arquivo após -o
func criarSaida(cmd toolchain.Command) error {
	for i, a := range cmd.Args {
		if a == "-o" && i+1 < len(cmd.Args) {
			return os.WriteFile(cmd.Args[i+1], []byte("bin"), 0o600)
		}
	}
	return nil
}

func nativo(r *toolchaintest.Runner) *NativeBackend {
	return NewNativeBackend(triple, toolchain.NewEmitter("", r), linker.NewGNU(linker.Tools{}, r))
}

func TestNativeBackend(t *testing.T) {
	r := toolchaintest.New("llc", "gcc")
	r.OnRun = criarSaida

	prog, err := parser.Parse("let x = 2 + 3 * 4;\nprint x;\n")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "bin", "prog")
	res, err := nativo(r).Compile(prog, out)
	if err != nil {
		t.Fatal(err)
	}

	obj := filepath.Join(filepath.Dir(out), "prog.o")
	if !res.Success || res.OutputFile != out || res.ObjectFile != obj {
		t.Errorf("result = %+v", res)
	}
	if res.Message != "Built "+out {
		t.Errorf("message = %q", res.Message)
	}
	if len(r.Calls) != 2 {
		t.Fatalf("got %d calls, want llc and gcc: %v", len(r.Calls), r.Calls)
	}
	if r.Calls[0].Base() != "llc" || !strings.Contains(r.Calls[0].Stdin, "define i32 @main()") {
		t.Errorf("first call = %+v", r.Calls[0])
	}
	link := r.Calls[1]
	if link.Base() != "gcc" || link.Args[0] != obj || link.Args[2] != out {
		t.Errorf("link call = %s %q", link.Name, link.Args)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if os.PathSeparator == '/' && info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestNativeBackendSemanticErrorRunsNothing(t *testing.T) {
	r := toolchaintest.New("llc", "gcc")
	prog, err := parser.Parse("print y;\n")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "prog")
	if _, err := nativo(r).Compile(prog, out); utils.KindOf(err) != utils.SemanticError {
		t.Fatalf("error = %v, want semantic error", err)
	}
	if len(r.Calls) != 0 {
		t.Errorf("tools were run: %v", r.Calls)
	}
	if _, err := os.Stat(utils.CaminhoObjeto(out)); !os.IsNotExist(err) {
		t.Errorf("object file exists after a semantic error")
	}
}

func TestNativeBackendKeepsObjectOnLinkFailure(t *testing.T) {
	r := toolchaintest.New("llc", "gcc")
	r.OnRun = criarSaida
	r.Fail["gcc"] = toolchaintest.ErrExit

	prog, err := parser.Parse("let x = 1;\nprint x;\n")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "prog.exe")
	res, err := nativo(r).Compile(prog, out)
	if utils.KindOf(err) != utils.ToolchainError {
		t.Fatalf("error = %v, want toolchain error", err)
	}
	obj := filepath.Join(filepath.Dir(out), "prog.o")
	if res == nil || res.ObjectFile != obj {
		t.Errorf("result = %+v, want object %s", res, obj)
	}
	if _, err := os.Stat(obj); err != nil {
		t.Errorf("object file removed: %v", err)
	}
}

func TestCaminhoObjetoNaoSobrescreveSaida(t *testing.T) {
	if got := caminhoObjeto("out/prog.o"); got != "out/prog.o.o" {
		t.Errorf("caminhoObjeto = %q", got)
	}
	if got := caminhoObjeto("out/prog"); got != "out/prog.o" {
		t.Errorf("caminhoObjeto = %q", got)
	}
}

func TestIRBackend(t *testing.T) {
	prog, err := parser.Parse("let s = \"hi\";\nprint s;\n")
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "prog.ll")
	res, err := NewIRBackend(triple).Compile(prog, out)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.OutputFile != out || res.ObjectFile != "" {
		t.Errorf("result = %+v", res)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `c"hi\00"`) {
		t.Errorf("IR file missing string constant:\n%s", data)
	}
}
