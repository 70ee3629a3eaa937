package tree

import "strings"

// SplitPath trims surrounding whitespace from line and returns its non-empty
// slash-separated segments. It returns nil when nothing remains.
func SplitPath(line string) []string {
	var parts []string
	for _, part := range strings.Split(strings.TrimSpace(line), "/") {
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// Insert adds the path described by parts below root. Missing segments are
// created; a leaf that gains a child becomes a directory. An existing node is
// never turned back into a leaf, so the result depends only on the set of
// inserted paths.
func Insert(root *Node, parts []string) {
	current := root
	for _, part := range parts {
		child := current.ChildByName(part)
		if child == nil {
			child = &Node{Name: part}
			current.AddChild(child)
		}
		current = child
	}
}

// Build constructs a tree that mirrors the provided slash-delimited paths.
// Paths without segments are ignored.
func Build(paths []string) *Node {
	root := NewRoot()
	for _, p := range paths {
		parts := SplitPath(p)
		if len(parts) == 0 {
			continue
		}
		Insert(root, parts)
	}
	return root
}
