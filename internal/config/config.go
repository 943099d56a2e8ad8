// Package config carrega o perfil de toolchain: caminhos das ferramentas
// externas e o target triple usado na emissão.
package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/khevencolino/mini/internal/linker"
	"github.com/khevencolino/mini/internal/toolchain"
	"github.com/khevencolino/mini/internal/utils"
)

// Toolchain é o perfil lido do YAML; campos vazios usam os padrões do host
type Toolchain struct {
	Triple string `yaml:"triple"`
	LLC    string `yaml:"llc"`
	CC     string `yaml:"cc"`
	LD     string `yaml:"ld"`
	Link   string `yaml:"link"`
}

// Default devolve o perfil vazio: tudo descoberto no PATH e triple do host
func Default() *Toolchain {
	return &Toolchain{}
}

// Load lê o perfil em path. Um caminho vazio devolve Default.
func Load(path string) (*Toolchain, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &utils.CompilerError{
			Kind:     utils.UsageError,
			Mensagem: "cannot open toolchain profile " + path,
			Err:      err,
		}
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse decodifica um perfil; chaves desconhecidas são rejeitadas
func Parse(r io.Reader, nome string) (*Toolchain, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	tc := Default()
	if err := dec.Decode(tc); err != nil {
		// arquivo vazio vale como perfil padrão
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, &utils.CompilerError{
			Kind:     utils.UsageError,
			Mensagem: "invalid toolchain profile " + nome,
			Err:      err,
		}
	}
	if err := tc.validate(); err != nil {
		return nil, err
	}
	return tc, nil
}

func (tc *Toolchain) validate() error {
	if tc.Triple != "" && strings.Count(tc.Triple, "-") < 2 {
		return utils.NewUsageError("toolchain profile: triple %q is not of the form arch-vendor-os", tc.Triple)
	}
	return nil
}

// TargetTriple devolve o triple do perfil ou o do host
func (tc *Toolchain) TargetTriple() (string, error) {
	if tc.Triple != "" {
		return tc.Triple, nil
	}
	triple, err := toolchain.HostTriple()
	if err != nil {
		return "", &utils.CompilerError{Kind: utils.ToolchainError, Mensagem: "cannot determine target", Err: err}
	}
	return triple, nil
}

// Tools devolve as sobrescritas de ferramentas para o linker
func (tc *Toolchain) Tools() linker.Tools {
	return linker.Tools{CC: tc.CC, LD: tc.LD, Link: tc.Link}
}
