package filetree

import (
	"path/filepath"
	"strings"
)

// TextExtension is the only file suffix shown in the tree, matched case-insensitively.
const TextExtension = ".txt"

// ElisionMarker prefixes the root's display name; the full path lives in the window title.
const ElisionMarker = "..."

type Kind int

const (
	KindDirectory Kind = iota
	KindTextFile
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "text file"
}

// Node is one directory or text file. A directory starts Unexpanded (children nil) and
// becomes Expanded (children non-nil, possibly empty) on its first listing.
type Node struct {
	path     string
	name     string
	kind     Kind
	root     bool
	children []*Node
}

func newNode(path string, kind Kind, root bool) *Node {
	return &Node{
		path: path,
		name: baseName(path),
		kind: kind,
		root: root,
	}
}

// ID identifies the node within its tree.
func (n *Node) ID() string     { return n.path }
func (n *Node) Path() string   { return n.path }
func (n *Node) Name() string   { return n.name }
func (n *Node) Kind() Kind     { return n.kind }
func (n *Node) IsRoot() bool   { return n.root }
func (n *Node) IsDir() bool    { return n.kind == KindDirectory }
func (n *Node) Expanded() bool { return n.children != nil }

// Children returns the listed children, or nil while the node is Unexpanded.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) DisplayName() string {
	if n.root {
		return ElisionMarker + string(filepath.Separator) + n.name
	}
	return n.name
}

// baseName is the last path element, or "" for a filesystem root.
func baseName(path string) string {
	name := filepath.Base(path)
	if name == string(filepath.Separator) {
		return ""
	}
	return name
}

func isTextFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), TextExtension)
}
