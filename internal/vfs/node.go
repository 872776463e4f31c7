package vfs

import "sort"

// Kind tags a Node as a directory or a file.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// Entries maps child names to nodes when building a directory.
type Entries map[string]*Node

// Node is either a directory holding named children or a file holding text.
// Build nodes with NewDir and NewFile.
type Node struct {
	kind     Kind
	children map[string]*Node
	content  string
}

// NewDir creates a directory containing the given entries. A nil map yields
// an empty directory.
func NewDir(entries Entries) *Node {
	children := make(map[string]*Node, len(entries))
	for name, child := range entries {
		children[name] = child
	}
	return &Node{kind: KindDir, children: children}
}

// NewFile creates a file with the given content.
func NewFile(content string) *Node {
	return &Node{kind: KindFile, content: content}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsDir() bool { return n != nil && n.kind == KindDir }

func (n *Node) IsFile() bool { return n != nil && n.kind == KindFile }

// Content returns the text of a file, or "" for a directory.
func (n *Node) Content() string {
	if !n.IsFile() {
		return ""
	}
	return n.content
}

// Len returns the number of direct children of a directory.
func (n *Node) Len() int {
	if !n.IsDir() {
		return 0
	}
	return len(n.children)
}

// Names returns the sorted names of a directory's children.
func (n *Node) Names() []string {
	if !n.IsDir() {
		return nil
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Child returns the named child of a directory, or nil.
func (n *Node) Child(name string) *Node {
	if !n.IsDir() {
		return nil
	}
	return n.children[name]
}

// Clone returns a deep copy of the node and everything below it.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	if n.kind == KindFile {
		return NewFile(n.content)
	}
	clone := &Node{kind: KindDir, children: make(map[string]*Node, len(n.children))}
	for name, child := range n.children {
		clone.children[name] = child.Clone()
	}
	return clone
}

func (n *Node) has(name string) bool {
	_, ok := n.children[name]
	return ok
}

func (n *Node) set(name string, child *Node) {
	n.children[name] = child
}

func (n *Node) remove(name string) {
	delete(n.children, name)
}
