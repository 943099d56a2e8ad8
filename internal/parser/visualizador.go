package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte um comando para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(stmt Statement) *tree.Tree {
	switch s := stmt.(type) {
	case *LetStatement:
		arvore := tree.NewTree(tree.NodeString("let " + s.Name))
		v.adicionarSubarvore(arvore, v.criarArvoreExpressao(s.Value))
		return arvore
	case *PrintStatement:
		return tree.NewTree(tree.NodeString("print " + s.Name))
	default:
		return tree.NewTree(tree.NodeString("?"))
	}
}

// ImprimirArvore escreve a árvore de cada comando do programa em w
func (v *VisualizadorArvore) ImprimirArvore(w io.Writer, programa *Program) {
	for _, stmt := range programa.Statements {
		fmt.Fprintf(w, "=== line %d ===\n", stmt.Line())
		fmt.Fprintln(w, v.CriarArvore(stmt))
	}
}

// criarArvoreExpressao cria a árvore de uma expressão de forma recursiva
func (v *VisualizadorArvore) criarArvoreExpressao(expr Expression) *tree.Tree {
	switch e := expr.(type) {
	case *IntLiteral:
		return tree.NewTree(tree.NodeString(strconv.Itoa(int(e.Value))))

	case *VariableRef:
		return tree.NewTree(tree.NodeString(e.Name))

	case *StringLiteral:
		return tree.NewTree(tree.NodeString(strconv.Quote(e.Value)))

	case *Negate:
		arvore := tree.NewTree(tree.NodeString("neg"))
		v.adicionarSubarvore(arvore, v.criarArvoreExpressao(e.Operand))
		return arvore

	case *Binary:
		// Nó interno: operador com dois filhos
		arvore := tree.NewTree(tree.NodeString(e.Operator.String()))
		v.adicionarSubarvore(arvore, v.criarArvoreExpressao(e.Left))
		v.adicionarSubarvore(arvore, v.criarArvoreExpressao(e.Right))
		return arvore

	default:
		return tree.NewTree(tree.NodeString("ERRO"))
	}
}

// adicionarSubarvore adiciona uma subárvore como filho
func (v *VisualizadorArvore) adicionarSubarvore(pai *tree.Tree, filho *tree.Tree) {
	novoFilho := pai.AddChild(filho.Val())
	v.copiarFilhos(filho, novoFilho)
}

// copiarFilhos copia todos os filhos de uma árvore para outra
func (v *VisualizadorArvore) copiarFilhos(origem *tree.Tree, destino *tree.Tree) {
	for i := 0; ; i++ {
		filho, err := origem.Child(i)
		if err != nil {
			break // Não há mais filhos
		}
		novoFilho := destino.AddChild(filho.Val())
		v.copiarFilhos(filho, novoFilho)
	}
}
