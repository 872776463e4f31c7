package vfs

import "strings"

const (
	// HomeToken heads paths below the player's home directory.
	HomeToken = "~"
	// RootToken heads paths below the filesystem root "/".
	RootToken = "root"
)

// Path is a resolved location: a root token followed by child names.
type Path []string

// Home returns the path of the home root.
func Home() Path { return Path{HomeToken} }

// Root returns the path of the filesystem root.
func Root() Path { return Path{RootToken} }

// IsRoot reports whether p names one of the two roots.
func (p Path) IsRoot() bool {
	return len(p) == 1 && (p[0] == HomeToken || p[0] == RootToken)
}

// Parent returns p without its last element. The parent of a root is empty.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Name returns the last element of p.
func (p Path) Name() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Join returns a new path with names appended.
func (p Path) Join(names ...string) Path {
	joined := make(Path, 0, len(p)+len(names))
	joined = append(joined, p...)
	return append(joined, names...)
}

// Clone returns a copy that shares no backing array with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(make(Path, 0, len(p)), p...)
}

func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether q is p or one of its ancestors.
func (p Path) HasPrefix(q Path) bool {
	return len(q) <= len(p) && p[:len(q)].Equal(q)
}

// String renders p the way the prompt shows it: "~", "/", "~/a/b", "/a/b".
func (p Path) String() string {
	switch {
	case len(p) == 0:
		return ""
	case p[0] == HomeToken && len(p) == 1:
		return "~"
	case p[0] == RootToken && len(p) == 1:
		return "/"
	case p[0] == HomeToken:
		return "~/" + strings.Join(p[1:], "/")
	case p[0] == RootToken:
		return "/" + strings.Join(p[1:], "/")
	}
	return strings.Join(p, "/")
}

// key is the canonical form used by the corrupted set. Names never contain
// "/", so descendants of p are exactly the keys prefixed by key(p)+"/".
func (p Path) key() string {
	return strings.Join(p, "/")
}

// ResolvePath converts user input into a path, relative to cwd when the input
// is relative. It never fails and never consults the tree.
func ResolvePath(cwd Path, input string) Path {
	s := strings.TrimSpace(input)
	if s == "" {
		return cwd.Clone()
	}
	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = s[:len(s)-1]
	}

	switch {
	case s == "/":
		return Root()
	case s == "~":
		return Home()
	case strings.HasPrefix(s, "/"):
		return append(Root(), segments(s[1:])...)
	case strings.HasPrefix(s, "~/"):
		return append(Home(), segments(s[2:])...)
	}

	resolved := cwd.Clone()
	for _, seg := range segments(s) {
		switch seg {
		case ".":
		case "..":
			if len(resolved) > 1 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, seg)
		}
	}
	return resolved
}

func segments(s string) []string {
	var segs []string
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}
