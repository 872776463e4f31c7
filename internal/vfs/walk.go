package vfs

import (
	"errors"
	"strings"
)

// SkipDir can be returned by a WalkFunc to skip the children of a directory.
// Returned for a file it has no effect.
var SkipDir = errors.New("skip this directory")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(p Path, n *Node) error

// Walk visits the node at input and everything below it, depth first, with
// siblings in name order.
func (fs *FileSystem) Walk(input string, fn WalkFunc) error {
	start := fs.Resolve(input)
	n := fs.Lookup(start)
	if n == nil {
		return opError("walk", input, ErrNotExist, "%s: No such file or directory", input)
	}

	return walk(start, n, fn)
}

func walk(p Path, n *Node, fn WalkFunc) error {
	if err := fn(p, n); err != nil {
		if errors.Is(err, SkipDir) {
			return nil
		}
		return err
	}

	for _, name := range n.Names() {
		if err := walk(p.Join(name), n.Child(name), fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the display paths of every item below start whose name
// contains pattern, ignoring case. An empty pattern matches everything.
func (fs *FileSystem) Find(pattern, start string) []string {
	needle := strings.ToLower(pattern)
	startPath := fs.Resolve(start)

	var matches []string
	_ = fs.Walk(start, func(p Path, _ *Node) error {
		if p.Equal(startPath) {
			return nil
		}
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			matches = append(matches, p.String())
		}
		return nil
	})
	return matches
}

// Snapshot returns an independent deep copy of the world, cursor and
// corrupted set included.
func (fs *FileSystem) Snapshot() *FileSystem {
	corrupted := make(map[string]struct{}, len(fs.corrupted))
	for key := range fs.corrupted {
		corrupted[key] = struct{}{}
	}
	return &FileSystem{
		home:      fs.home.Clone(),
		root:      fs.root.Clone(),
		cwd:       fs.cwd.Clone(),
		corrupted: corrupted,
		logger:    fs.logger,
	}
}
