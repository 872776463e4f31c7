package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/cyberscape/internal/vfs"
)

// splitLines splits file content the way the player sees it: no trailing
// empty line, no lines at all for an empty file.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// missingOrDir reports why input could not be read as a file.
func (s *Shell) missingOrDir(out *Output, cmd, input string) {
	if s.fs.NodeAt(input).IsDir() {
		out.errorf("%s: %s: Is a directory", cmd, input)
		return
	}
	out.errorf("%s: %s: No such file or directory", cmd, input)
}

func (s *Shell) ls(args []string, out *Output) {
	target := "."
	if len(args) > 1 {
		out.errorf("ls: too many arguments")
		return
	}
	if len(args) == 1 {
		target = args[0]
	}

	node := s.fs.NodeAt(target)
	switch {
	case node == nil:
		out.errorf("ls: cannot access '%s': No such file or directory", target)
	case node.IsFile():
		out.plain(target)
	default:
		items, _ := s.fs.List(target)
		glitchy := s.fs.CountCorruptedInDir(target) > 1
		for _, item := range items {
			kind := KindPlain
			if strings.HasSuffix(item, "/") {
				kind = KindHighlight
			}
			l := out.line(kind, item)
			if glitchy && s.roll.Float64() < 0.25 {
				l.Glitch = true
			}
		}
	}
}

func (s *Shell) cd(args []string, out *Output) {
	target := "~"
	if len(args) > 1 {
		out.errorf("cd: too many arguments")
		return
	}
	if len(args) == 1 {
		target = args[0]
	}
	msg, err := s.fs.ChangeDir(target)
	s.report(out, msg, err)
}

func (s *Shell) cat(args []string, out *Output) {
	switch len(args) {
	case 0:
		out.errorf("cat: missing file operand")
		return
	case 1:
	default:
		out.errorf("cat: too many arguments")
		out.errorf("Usage: cat <file>")
		return
	}

	name := args[0]
	content, ok := s.fs.ReadContent(name)
	if !ok {
		s.missingOrDir(out, "cat", name)
		return
	}

	if !s.fs.IsCorrupted(name) {
		for _, l := range splitLines(content) {
			out.plain(l)
		}
		return
	}

	out.errorf("[%s - CORRUPTED DATA STREAM]", name)
	for _, l := range splitLines(content) {
		out.line(KindError, l).Glitch = true
	}
	out.errorf("[END OF CORRUPTED STREAM - %s]", name)
}

func (s *Shell) head(args []string, out *Output) { s.headTail("head", args, out) }

func (s *Shell) tail(args []string, out *Output) { s.headTail("tail", args, out) }

func (s *Shell) headTail(cmd string, args []string, out *Output) {
	n := 10
	if len(args) > 0 && args[0] == "-n" {
		if len(args) < 2 {
			out.errorf("%s: option requires an argument -- 'n'", cmd)
			return
		}
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			out.errorf("%s: invalid number of lines: '%s'", cmd, args[1])
			return
		}
		n = v
		args = args[2:]
	}
	if len(args) == 0 {
		out.errorf("%s: missing file operand", cmd)
		return
	}

	name := args[0]
	content, ok := s.fs.ReadContent(name)
	if !ok {
		s.missingOrDir(out, cmd, name)
		return
	}

	lines := splitLines(content)
	if n > len(lines) {
		n = len(lines)
	}
	if cmd == "head" {
		lines = lines[:n]
	} else {
		lines = lines[len(lines)-n:]
	}
	for _, l := range lines {
		out.plain(l)
	}
}

func (s *Shell) grep(args []string, out *Output) {
	if len(args) != 2 {
		out.errorf("Usage: grep <pattern> <file>")
		return
	}
	pattern, name := args[0], args[1]

	content, ok := s.fs.ReadContent(name)
	if !ok {
		s.missingOrDir(out, "grep", name)
		return
	}

	corrupted := s.fs.IsCorrupted(name)
	for i, l := range splitLines(content) {
		if !strings.Contains(l, pattern) {
			continue
		}
		line := out.plain(fmt.Sprintf("%d:%s", i+1, l))
		if corrupted && s.roll.Float64() < 0.15 {
			line.Glitch = true
		}
	}
}

func (s *Shell) mkdir(args []string, out *Output) {
	parents := false
	if len(args) > 0 && args[0] == "-p" {
		parents = true
		args = args[1:]
	}
	switch {
	case len(args) == 0:
		out.errorf("mkdir: missing operand")
		out.errorf("Usage: mkdir <directory_name>")
		return
	case len(args) > 1:
		out.errorf("mkdir: too many arguments")
		out.errorf("Usage: mkdir <directory_name>")
		return
	}

	if parents {
		msg, err := s.fs.MakeDirAll(args[0])
		s.report(out, msg, err)
		return
	}
	msg, err := s.fs.MakeDir(args[0])
	s.report(out, msg, err)
}

func (s *Shell) touch(args []string, out *Output) {
	switch {
	case len(args) == 0:
		out.errorf("touch: missing file operand")
		out.errorf("Usage: touch <filename>")
		return
	case len(args) > 1:
		out.errorf("touch: too many arguments")
		out.errorf("Usage: touch <filename>")
		return
	}
	msg, err := s.fs.Touch(args[0])
	s.report(out, msg, err)
}

func (s *Shell) write(args []string, out *Output) {
	if len(args) < 2 {
		out.errorf("Usage: write <file> <content>")
		return
	}
	msg, err := s.fs.WriteFile(args[0], strings.Join(args[1:], " "))
	if err != nil {
		out.line(KindError, err.Error())
		return
	}
	out.successf("%s", msg)
}

// splitFlags separates "-x" style options from operands.
func splitFlags(args []string) (flags, operands []string) {
	for _, a := range args {
		if strings.HasPrefix(a, "-") && len(a) > 1 {
			flags = append(flags, a)
		} else {
			operands = append(operands, a)
		}
	}
	return flags, operands
}

func isRecursiveFlag(flag string) bool {
	switch flag {
	case "-r", "-R", "-rf", "-fr", "-Rf":
		return true
	}
	return false
}

func (s *Shell) rm(args []string, out *Output) {
	if len(args) == 0 {
		out.errorf("rm: missing operand")
		return
	}

	flags, paths := splitFlags(args)
	recursive := false
	var unknown []string
	for _, f := range flags {
		if isRecursiveFlag(f) {
			recursive = true
		} else {
			unknown = append(unknown, f)
		}
	}

	if len(unknown) > 0 {
		for _, f := range unknown {
			out.errorf("rm: invalid option -- '%s'", f[1:])
		}
		out.errorf("Usage: rm [-r | -rf] <file_or_directory>")
		return
	}
	switch {
	case len(paths) == 0:
		out.errorf("rm: missing operand")
		return
	case len(paths) > 1:
		out.errorf("rm: currently supports removing one item at a time")
		return
	}

	msg, err := s.fs.Remove(paths[0], recursive)
	s.report(out, msg, err)
}

func (s *Shell) mv(args []string, out *Output) {
	if len(args) != 2 {
		out.errorf("mv: missing file operand(s) or too many arguments")
		out.errorf("Usage: mv <source> <destination>")
		return
	}
	msg, err := s.fs.Move(args[0], args[1])
	s.report(out, msg, err)
}

func (s *Shell) cp(args []string, out *Output) {
	flags, operands := splitFlags(args)
	recursive := false
	for _, f := range flags {
		if !isRecursiveFlag(f) {
			out.errorf("cp: invalid option -- '%s'", f[1:])
			out.errorf("Usage: cp [-r] <source> <destination>")
			return
		}
		recursive = true
	}
	if len(operands) != 2 {
		out.errorf("cp: missing file operand(s) or too many arguments")
		out.errorf("Usage: cp [-r] <source> <destination>")
		return
	}
	msg, err := s.fs.Copy(operands[0], operands[1], recursive)
	s.report(out, msg, err)
}

func (s *Shell) find(args []string, out *Output) {
	if len(args) == 0 || len(args) > 2 {
		out.errorf("Usage: find <pattern> [dir]")
		return
	}
	dir := "."
	if len(args) == 2 {
		dir = args[1]
	}
	if !s.fs.NodeAt(dir).IsDir() {
		out.errorf("find: '%s': No such file or directory", dir)
		return
	}

	for _, p := range s.fs.Find(args[0], dir) {
		out.plain(p).Glitch = s.fs.IsCorrupted(p)
	}
}

func (s *Shell) tree(args []string, out *Output) {
	if len(args) > 1 {
		out.errorf("tree: too many arguments")
		return
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	node := s.fs.NodeAt(dir)
	if node == nil {
		out.errorf("tree: %s: No such file or directory", dir)
		return
	}
	if !node.IsDir() {
		out.errorf("tree: %s: Not a directory", dir)
		return
	}

	dirs, files := 0, 0
	for _, row := range TreeLines(s.fs, dir) {
		if row.Depth == 0 {
			out.highlightf("%s", dir)
			continue
		}
		if row.Node.IsDir() {
			dirs++
		} else {
			files++
		}
		text := row.Prefix + row.Path.Name()
		if row.Corrupted {
			out.line(KindError, text+" [CORRUPTED]").Glitch = true
			continue
		}
		kind := KindPlain
		if row.Node.IsDir() {
			kind = KindHighlight
		}
		out.line(kind, text)
	}
	out.plain("")
	out.plain(fmt.Sprintf("%d %s, %d %s", dirs, plural(dirs, "directory", "directories"), files, plural(files, "file", "files")))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// TreeRow is one entry of a rendered directory tree.
type TreeRow struct {
	Path      vfs.Path
	Node      *vfs.Node
	Depth     int
	Prefix    string // box-drawing characters before the name
	Corrupted bool
}

// TreeLines walks the directory at input and returns one row per item, the
// directory itself first. It returns nil when input is not a directory.
func TreeLines(fs *vfs.FileSystem, input string) []TreeRow {
	start := fs.Resolve(input)
	if !fs.Lookup(start).IsDir() {
		return nil
	}

	var rows []TreeRow
	var last []bool
	_ = fs.Walk(input, func(p vfs.Path, n *vfs.Node) error {
		depth := len(p) - len(start)
		row := TreeRow{Path: p, Node: n, Depth: depth, Corrupted: fs.IsCorrupted(p.String())}
		if depth > 0 {
			siblings := fs.Lookup(p.Parent()).Names()
			isLast := siblings[len(siblings)-1] == p.Name()
			last = append(last[:depth-1], isLast)

			var b strings.Builder
			for _, l := range last[:depth-1] {
				if l {
					b.WriteString("    ")
				} else {
					b.WriteString("│   ")
				}
			}
			if isLast {
				b.WriteString("└── ")
			} else {
				b.WriteString("├── ")
			}
			row.Prefix = b.String()
		}
		rows = append(rows, row)
		return nil
	})
	return rows
}
