package mount

import (
	"strings"

	"github.com/vvka-141/cyberscape/internal/vfs"
)

// Top-level directory names of the mount point.
const (
	HomeDir = "home"
	RootDir = "root"
)

// Entry is one item of a flattened world.
type Entry struct {
	// Path is relative to the mount point, e.g. "home/documents/notes.txt".
	Path string
	// GamePath is the display path inside the game, e.g. "~/documents/notes.txt".
	GamePath  string
	Dir       bool
	Content   []byte
	Corrupted bool
}

// Name returns the last element of Path.
func (e Entry) Name() string {
	return e.Path[strings.LastIndex(e.Path, "/")+1:]
}

// Parent returns Path without its last element.
func (e Entry) Parent() string {
	i := strings.LastIndex(e.Path, "/")
	if i < 0 {
		return ""
	}
	return e.Path[:i]
}

// Flatten lists every item of world, parents before children, siblings in
// name order. The two roots come first as HomeDir and RootDir.
func Flatten(world *vfs.FileSystem) []Entry {
	var entries []Entry
	for _, top := range []struct{ input, dir string }{{"~", HomeDir}, {"/", RootDir}} {
		_ = world.Walk(top.input, func(p vfs.Path, n *vfs.Node) error {
			rel := append([]string{top.dir}, p[1:]...)
			e := Entry{
				Path:      strings.Join(rel, "/"),
				GamePath:  p.String(),
				Dir:       n.IsDir(),
				Corrupted: world.IsCorrupted(p.String()),
			}
			if n.IsFile() {
				e.Content = []byte(n.Content())
			}
			entries = append(entries, e)
			return nil
		})
	}
	return entries
}
