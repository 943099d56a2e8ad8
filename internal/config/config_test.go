package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/khevencolino/mini/internal/linker"
	"github.com/khevencolino/mini/internal/utils"
)

func TestParse(t *testing.T) {
	src := `
triple: aarch64-unknown-linux-gnu
llc: /usr/lib/llvm-17/bin/llc
cc: clang
ld: ld.lld
`
	tc, err := Parse(strings.NewReader(src), "test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := &Toolchain{
		Triple: "aarch64-unknown-linux-gnu",
		LLC:    "/usr/lib/llvm-17/bin/llc",
		CC:     "clang",
		LD:     "ld.lld",
	}
	if diff := pretty.Diff(tc, want); len(diff) > 0 {
		t.Errorf("profile mismatch:\n%s", strings.Join(diff, "\n"))
	}

	triple, err := tc.TargetTriple()
	if err != nil || triple != "aarch64-unknown-linux-gnu" {
		t.Errorf("TargetTriple() = %q, %v", triple, err)
	}
	if got := tc.Tools(); got != (linker.Tools{CC: "clang", LD: "ld.lld"}) {
		t.Errorf("Tools() = %+v", got)
	}
}

func TestParseEmpty(t *testing.T) {
	tc, err := Parse(strings.NewReader(""), "empty.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if *tc != (Toolchain{}) {
		t.Errorf("empty profile = %+v, want defaults", tc)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "linker: gold\n",
		"bad triple":   "triple: x86_64\n",
		"not a map":    "- llc\n",
		"wrong scalar": "cc: [gcc, clang]\n",
	}
	for name, src := range tests {
		_, err := Parse(strings.NewReader(src), name)
		if err == nil {
			t.Errorf("%s: Parse succeeded, want error", name)
			continue
		}
		if utils.KindOf(err) != utils.UsageError {
			t.Errorf("%s: kind = %v, want usage error", name, utils.KindOf(err))
		}
	}
}

func TestLoad(t *testing.T) {
	tc, err := Load("")
	if err != nil || *tc != (Toolchain{}) {
		t.Fatalf("Load(\"\") = %+v, %v", tc, err)
	}

	path := filepath.Join(t.TempDir(), "toolchain.yaml")
	if err := os.WriteFile(path, []byte("link: lld-link.exe\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tc, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Link != "lld-link.exe" {
		t.Errorf("Link = %q, want lld-link.exe", tc.Link)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); utils.KindOf(err) != utils.UsageError {
		t.Errorf("missing profile: error = %v, want usage error", err)
	}
}
