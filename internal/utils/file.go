package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		e := NovoErro(UsageError, "cannot read "+nomeArquivo, 0, 0, "")
		e.Err = err
		return "", e
	}
	return string(bytesConteudo), nil
}

// CriarDiretorioPai garante que o diretório de arquivo exista
func CriarDiretorioPai(arquivo string) error {
	diretorio := filepath.Dir(arquivo)
	if err := os.MkdirAll(diretorio, 0o755); err != nil {
		return NewToolchainError(err, "cannot create directory %s", diretorio)
	}
	return nil
}

// EscreverArquivo escreve conteúdo em um arquivo, criando o diretório se preciso
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	if err := CriarDiretorioPai(nomeArquivo); err != nil {
		return err
	}

	if err := os.WriteFile(nomeArquivo, []byte(conteudo), 0o644); err != nil {
		return NewToolchainError(err, "cannot write %s", nomeArquivo)
	}

	return nil
}

// CaminhoObjeto troca a extensão do executável por ".o" (prog.exe -> prog.o)
func CaminhoObjeto(executavel string) string {
	ext := filepath.Ext(executavel)
	return strings.TrimSuffix(executavel, ext) + ".o"
}
