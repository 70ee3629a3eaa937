package tree

import "sort"

// Node represents a single entry in the path tree. A node without children is
// a leaf (file); a node with at least one child is a directory.
type Node struct {
	Name     string
	Children []*Node

	index map[string]*Node
}

// NewRoot creates the implicit root node. The root is never printed.
func NewRoot() *Node {
	return &Node{}
}

// IsDir reports whether the node has children.
func (n *Node) IsDir() bool {
	return len(n.Children) > 0
}

// ChildByName returns the child node with the given name if it exists.
func (n *Node) ChildByName(name string) *Node {
	if n.index == nil {
		return nil
	}
	return n.index[name]
}

// AddChild attaches child to n. Attaching a child to a leaf turns it into a
// directory.
func (n *Node) AddChild(child *Node) {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	n.index[child.Name] = child
	n.Children = append(n.Children, child)
}

// Sorted returns the children of n with directories first and files second,
// each group ordered by name. Names compare bytewise, which for UTF-8 is
// codepoint order. The node itself is not modified.
func (n *Node) Sorted() []*Node {
	sorted := make([]*Node, len(n.Children))
	copy(sorted, n.Children)
	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := sorted[i], sorted[j]
		switch {
		case ci.IsDir() == cj.IsDir():
			return ci.Name < cj.Name
		case ci.IsDir():
			return true
		default:
			return false
		}
	})
	return sorted
}
