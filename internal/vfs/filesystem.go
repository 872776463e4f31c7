package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/cyberscape/internal/logging"
	"github.com/vvka-141/cyberscape/pkg/cyberscape"
)

// FileSystem is one player's world: two root directories, the current
// working directory and the corrupted set.
type FileSystem struct {
	home      *Node
	root      *Node
	cwd       Path
	corrupted map[string]struct{}
	logger    cyberscape.Logger
}

// Option configures a FileSystem created by New.
type Option func(*options)

type options struct {
	home   *Node
	root   *Node
	seeded bool
	logger cyberscape.Logger
}

// WithEmptyTree starts from two empty roots with nothing corrupted.
func WithEmptyTree() Option {
	return func(o *options) {
		o.home = NewDir(nil)
		o.root = NewDir(nil)
		o.seeded = false
	}
}

// WithTree starts from the given root directories with nothing corrupted.
// Non-directory arguments are replaced by empty directories.
func WithTree(home, root *Node) Option {
	return func(o *options) {
		if !home.IsDir() {
			home = NewDir(nil)
		}
		if !root.IsDir() {
			root = NewDir(nil)
		}
		o.home = home
		o.root = root
		o.seeded = false
	}
}

// WithLogger sets the logger used for verbose mutation traces.
func WithLogger(logger cyberscape.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates a FileSystem positioned at "~". Without options it holds the
// default world from DefaultHome and DefaultRoot with DefaultCorrupted
// flagged.
func New(opts ...Option) *FileSystem {
	o := options{
		home:   DefaultHome(),
		root:   DefaultRoot(),
		seeded: true,
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	fs := &FileSystem{
		home:      o.home,
		root:      o.root,
		cwd:       Home(),
		corrupted: make(map[string]struct{}),
		logger:    o.logger,
	}

	if o.seeded {
		for _, item := range DefaultCorrupted() {
			if _, err := fs.MarkCorrupted(item, true); err != nil {
				fs.logger.Verbose("vfs: could not flag %s during seeding: %v", item, err)
			}
		}
	}
	return fs
}

// Resolve converts input into a path relative to the current directory.
func (fs *FileSystem) Resolve(input string) Path {
	return ResolvePath(fs.cwd, input)
}

// Lookup returns the node at p, or nil when any element is missing or a file
// is traversed as if it were a directory.
func (fs *FileSystem) Lookup(p Path) *Node {
	if len(p) == 0 {
		return nil
	}

	var n *Node
	switch p[0] {
	case HomeToken:
		n = fs.home
	case RootToken:
		n = fs.root
	default:
		return nil
	}

	for _, name := range p[1:] {
		n = n.Child(name)
		if n == nil {
			return nil
		}
	}
	return n
}

// NodeAt resolves input and returns the node there, or nil.
func (fs *FileSystem) NodeAt(input string) *Node {
	return fs.Lookup(fs.Resolve(input))
}

// Cwd returns a copy of the current working path.
func (fs *FileSystem) Cwd() Path {
	return fs.cwd.Clone()
}

// CurrentPathString renders the current directory, e.g. "~/documents".
func (fs *FileSystem) CurrentPathString() string {
	return fs.cwd.String()
}

// CurrentDirNode returns the directory node of the current working path.
func (fs *FileSystem) CurrentDirNode() *Node {
	return fs.Lookup(fs.cwd)
}

// ChangeDir moves the cursor. An empty target means home and ".." stops at
// a root. On success the message is the new current path.
func (fs *FileSystem) ChangeDir(target string) (string, error) {
	if target == "" {
		target = "~"
	}

	var dest Path
	switch target {
	case "~":
		dest = Home()
	case "/":
		dest = Root()
	case "..":
		dest = fs.cwd.Clone()
		if len(dest) > 1 {
			dest = dest.Parent()
		}
	default:
		dest = fs.Resolve(target)
	}

	n := fs.Lookup(dest)
	if n == nil {
		return "", opError("cd", target, ErrNotExist, "cd: %s: No such file or directory", target)
	}
	if !n.IsDir() {
		return "", opError("cd", target, ErrNotDir, "cd: %s: Not a directory", target)
	}

	fs.cwd = dest
	return fs.CurrentPathString(), nil
}

// validName rejects names that would escape the current directory.
func validName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..") && name != "."
}

// MakeDir creates an empty directory named name in the current directory.
func (fs *FileSystem) MakeDir(name string) (string, error) {
	if name == "" {
		return "", opError("mkdir", name, ErrMissingOperand, "mkdir: missing operand")
	}
	if !validName(name) {
		return "", opError("mkdir", name, ErrInvalidName, "mkdir: invalid directory name: %s", name)
	}

	parent := fs.CurrentDirNode()
	if !parent.IsDir() {
		return "", opError("mkdir", name, ErrNotDir, "mkdir: error accessing current directory structure.")
	}
	if parent.has(name) {
		return "", opError("mkdir", name, ErrExist, "mkdir: cannot create directory ‘%s’: File exists", name)
	}

	parent.set(name, NewDir(nil))
	fs.logger.Verbose("vfs: mkdir %s", fs.cwd.Join(name))
	return fmt.Sprintf("Directory '%s' created.", name), nil
}

// Touch creates name in the current directory, or truncates it to empty if
// it already is a file.
func (fs *FileSystem) Touch(name string) (string, error) {
	if name == "" {
		return "", opError("touch", name, ErrMissingOperand, "touch: missing file operand")
	}
	if !validName(name) {
		return "", opError("touch", name, ErrInvalidName, "touch: invalid file name: %s", name)
	}

	parent := fs.CurrentDirNode()
	if !parent.IsDir() {
		return "", opError("touch", name, ErrNotDir, "touch: error accessing current directory structure.")
	}
	if parent.Child(name).IsDir() {
		return "", opError("touch", name, ErrIsDir, "touch: cannot touch ‘%s’: Is a directory", name)
	}

	parent.set(name, NewFile(""))
	fs.logger.Verbose("vfs: touch %s", fs.cwd.Join(name))
	return fmt.Sprintf("File '%s' touched.", name), nil
}

// List returns the sorted children of the directory at input, with "/"
// appended to directory names. ok is false when input is not a directory.
func (fs *FileSystem) List(input string) (items []string, ok bool) {
	dir := fs.NodeAt(input)
	if !dir.IsDir() {
		return nil, false
	}

	items = make([]string, 0, dir.Len())
	for _, name := range dir.Names() {
		if dir.Child(name).IsDir() {
			name += "/"
		}
		items = append(items, name)
	}
	return items, true
}

// ReadContent returns the content of the file at input. ok is false for
// directories and missing paths alike.
func (fs *FileSystem) ReadContent(input string) (content string, ok bool) {
	n := fs.NodeAt(input)
	if !n.IsFile() {
		return "", false
	}
	return n.Content(), true
}

// repairCwd walks the cursor up until it names an existing directory.
func (fs *FileSystem) repairCwd() {
	for len(fs.cwd) > 1 && !fs.Lookup(fs.cwd).IsDir() {
		fs.cwd = fs.cwd.Parent()
	}
}
