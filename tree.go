package papertrail

import (
	"path"
	"sort"
	"strings"
)

// EntryType distinguishes files from directories in the remote quiz
// repository.
type EntryType int

const (
	FileType EntryType = iota
	DirType
)

// Entry is a single item from the remote content source,
// either a quiz file or a directory.
type Entry interface {
	Name() string
	Path() string
	Type() EntryType
	// DownloadURL is the location of the raw file content.
	// It is empty for directories.
	DownloadURL() string
}

// Node is the representation for an entry in the content tree.
// A node can either be a file or a directory (which has child nodes).
type Node struct {
	Parent   *Node
	Children []*Node
	entry    Entry
}

func newNode(e Entry) *Node {
	return &Node{
		Children: make([]*Node, 0),
		entry:    e,
	}
}

func (n *Node) Name() string {
	if n.IsRoot() {
		return ""
	}
	return n.entry.Name()
}

func (n *Node) Path() string {
	if n.IsRoot() {
		return ""
	}
	return n.entry.Path()
}

func (n *Node) Type() EntryType {
	if n.IsRoot() {
		return DirType
	}
	return n.entry.Type()
}

func (n *Node) DownloadURL() string {
	if n.IsRoot() {
		return ""
	}
	return n.entry.DownloadURL()
}

func (n *Node) IsRoot() bool {
	return n.entry == nil
}

func (n *Node) IsLeaf() bool {
	return n.Type() == FileType
}

// Walk visits this node and all of its descendants, depth first.
// If the visitor function returns an error, the walk stops.
func (n *Node) Walk(f func(n *Node) error) error {
	if !n.IsRoot() {
		err := f(n)
		if err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		err := c.Walk(f)
		if err != nil {
			return err
		}
	}

	return nil
}

// Sort sorts the subtree starting at this node by the given sort rule.
// Sorting is in-place.
func (n *Node) Sort(compare func(*Node, *Node) bool) {
	f := func(i, j int) bool {
		return compare(n.Children[i], n.Children[j])
	}
	sort.Slice(n.Children, f)

	for _, c := range n.Children {
		c.Sort(compare)
	}
}

// NodeFilter is a predicate to select nodes from the tree.
type NodeFilter func(n *Node) bool

// Filtered returns a copy of the tree which contains only leaf nodes that
// match all of the given filters. Directories are kept if they have at
// least one matching descendant.
func (n *Node) Filtered(filters ...NodeFilter) *Node {
	root := &Node{Children: make([]*Node, 0), entry: n.entry}

	for _, c := range n.Children {
		if c.IsLeaf() {
			if matches(c, filters...) {
				root.addChild(newNode(c.entry))
			}
		} else {
			f := c.Filtered(filters...)
			if len(f.Children) != 0 {
				root.addChild(f)
			}
		}
	}

	return root
}

func matches(n *Node, filters ...NodeFilter) bool {
	for _, f := range filters {
		if !f(n) {
			return false
		}
	}
	return true
}

// IsQuizFile matches leaf nodes with the ".tex" extension.
func IsQuizFile(n *Node) bool {
	return n.IsLeaf() && strings.HasSuffix(n.Name(), ".tex")
}

// MatchName creates a filter that matches node names case-insensitive
// against the given pattern.
func MatchName(s string) NodeFilter {
	q := strings.ToLower(s)
	return func(n *Node) bool {
		return strings.Contains(strings.ToLower(n.Name()), q)
	}
}

// Outline is a pure projection of the tree into display lines.
// Collapsed directories (expanded returns false) hide their children.
// A nil expanded function shows the full tree.
func (n *Node) Outline(expanded func(*Node) bool) []string {
	lines := make([]string, 0)
	n.outline(&lines, 0, expanded)
	return lines
}

func (n *Node) outline(lines *[]string, level int, expanded func(*Node) bool) {
	if !n.IsRoot() {
		prefix := strings.Repeat("  ", level-1)
		if n.IsLeaf() {
			*lines = append(*lines, prefix+"- "+n.Name())
		} else {
			*lines = append(*lines, prefix+"+ "+n.Name())
		}

		if !n.IsLeaf() && expanded != nil && !expanded(n) {
			return
		}
	}

	for _, c := range n.Children {
		c.outline(lines, level+1, expanded)
	}
}

// addChild adds a child node to this node and sets the Parent field
// of the child.
func (n *Node) addChild(child *Node) {
	n.Children = append(n.Children, child)
	child.Parent = n
}

// put attempts to accomodate the other node in the subtree starting at
// this node. Returns true if a parent directory was found.
func (n *Node) put(other *Node) bool {
	if path.Dir(other.Path()) == n.dirPath() {
		n.addChild(other)
		return true
	}

	for _, c := range n.Children {
		if c.put(other) {
			return true
		}
	}

	return false
}

func (n *Node) dirPath() string {
	if n.IsRoot() {
		return "."
	}
	return n.Path()
}

// BuildTree arranges a flat list of entries into a tree with directories
// and subdirectories. Entries whose parent directory is not part of the
// list are attached to the root.
func BuildTree(entries []Entry) *Node {
	root := &Node{Children: make([]*Node, 0)}

	nodes := make([]*Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, newNode(e))
	}

	for {
		change := false
		remaining := make([]*Node, 0)
		for _, n := range nodes {
			if root.put(n) {
				change = true
			} else {
				remaining = append(remaining, n)
			}
		}
		nodes = remaining
		if !change {
			break
		}
	}

	// orphans go to the root
	for _, n := range nodes {
		root.addChild(n)
	}

	return root
}

// DefaultSort is the comparison function to sort nodes in the content tree
// with directories before files and by name (case-insensitive).
func DefaultSort(one, other *Node) bool {
	// directories before files
	if one.IsLeaf() && !other.IsLeaf() {
		return false
	} else if other.IsLeaf() && !one.IsLeaf() {
		return true
	}

	// by name, case-insensitive
	return strings.ToLower(one.Name()) < strings.ToLower(other.Name())
}
