package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kyaoi/pathtree/internal/tree"
)

const (
	connectorMiddle = "├── "
	connectorLast   = "└── "
	indentOpen      = "│   "
	indentClosed    = "    "
)

var (
	treeLineColor = lipgloss.Color("#3b4261")
	dirNameColor  = lipgloss.Color("#7aa2f7")
	fileNameColor = lipgloss.Color("#a9b1d6")
)

// Printer writes a tree as indented text with box-drawing connectors.
type Printer struct {
	w      io.Writer
	styled bool

	lineStyle lipgloss.Style
	dirStyle  lipgloss.Style
	fileStyle lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Styles come from r; when r has
// no color support the output is plain text. A nil r selects NewRenderer(w).
func NewPrinter(w io.Writer, r *lipgloss.Renderer) *Printer {
	if r == nil {
		r = NewRenderer(w)
	}
	return &Printer{
		w:      w,
		styled: r.ColorProfile() != termenv.Ascii,
		lineStyle: r.NewStyle().
			Foreground(treeLineColor).
			TabWidth(lipgloss.NoTabConversion),
		dirStyle: r.NewStyle().
			Foreground(dirNameColor).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
		fileStyle: r.NewStyle().
			Foreground(fileNameColor).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// Print writes every descendant of root in depth-first pre-order. The root
// itself is not printed.
func (p *Printer) Print(root *tree.Node) error {
	if root == nil {
		return nil
	}
	return p.printChildren(root, "")
}

func (p *Printer) printChildren(node *tree.Node, prefix string) error {
	children := node.Sorted()
	for i, child := range children {
		last := i == len(children)-1
		connector, indent := connectorMiddle, indentOpen
		if last {
			connector, indent = connectorLast, indentClosed
		}
		if _, err := fmt.Fprintln(p.w, p.line(prefix, connector, child)); err != nil {
			return err
		}
		if child.IsDir() {
			if err := p.printChildren(child, prefix+indent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) line(prefix, connector string, entry *tree.Node) string {
	if !p.styled {
		return prefix + connector + entry.Name
	}
	name := p.fileStyle.Render(entry.Name)
	if entry.IsDir() {
		name = p.dirStyle.Render(entry.Name)
	}
	return p.lineStyle.Render(prefix+connector) + name
}
