package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kyaoi/pathtree/internal/tree"
)

// LoadTree reads newline-delimited paths from r until EOF and returns the
// resulting tree. Lines without segments are skipped; the last line needs no
// trailing newline.
func LoadTree(r io.Reader) (*tree.Node, error) {
	root := tree.NewRoot()

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if parts := tree.SplitPath(line); len(parts) > 0 {
			tree.Insert(root, parts)
		}
		if err != nil {
			return root, nil
		}
	}
}
