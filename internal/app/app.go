package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kyaoi/pathtree/internal/tree"
	"github.com/kyaoi/pathtree/internal/ui"
)

// Run reads every path from in and prints the resulting tree to out.
func Run(in io.Reader, out io.Writer) error {
	root, err := LoadTree(in)
	if err != nil {
		return err
	}
	return printTree(out, root)
}

func printTree(out io.Writer, root *tree.Node) error {
	// The renderer is bound to out so terminal detection sees the real file.
	renderer := ui.NewRenderer(out)
	buf := bufio.NewWriter(out)

	if err := ui.NewPrinter(buf, renderer).Print(root); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
