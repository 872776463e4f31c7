package vfs

import "fmt"

// Remove deletes the item at input. Non-empty directories need recursive.
// The roots can never be removed.
func (fs *FileSystem) Remove(input string, recursive bool) (string, error) {
	switch input {
	case "":
		return "", opError("rm", input, ErrMissingOperand, "rm: missing operand")
	case ".", "..":
		return "", opError("rm", input, ErrInvalidArgument, "rm: cannot remove '%s': Invalid argument", input)
	case "/", "~":
		return "", opError("rm", input, ErrNotPermitted, "rm: cannot remove '%s': Operation not permitted", input)
	}

	target := fs.Resolve(input)
	if target.IsRoot() {
		return "", opError("rm", input, ErrNotPermitted,
			"rm: cannot remove '%s' (resolved to root or home): Operation not permitted", input)
	}

	parent := fs.Lookup(target.Parent())
	item := parent.Child(target.Name())
	if item == nil {
		return "", opError("rm", input, ErrNotExist, "rm: cannot remove '%s': No such file or directory", input)
	}
	if item.IsDir() && item.Len() > 0 && !recursive {
		return "", opError("rm", input, ErrNotEmpty,
			"rm: cannot remove '%s': Directory not empty (use -r for recursive)", input)
	}

	parent.remove(target.Name())
	fs.purgeCorruption(target)
	fs.repairCwd()
	fs.logger.Verbose("vfs: rm %s (recursive=%t)", target, recursive)
	return fmt.Sprintf("Removed '%s'", input), nil
}

// placement is where a move or copy will put its source.
type placement struct {
	srcPath   Path
	srcParent *Node
	item      *Node
	final     Path
	dstParent *Node
}

// place resolves src and dst for mv and cp. When dst names an existing
// directory the item goes inside it under its own name; otherwise dst is the
// exact new path and its parent must be a directory.
func (fs *FileSystem) place(op, src, dst string) (*placement, error) {
	if src == "" || dst == "" {
		return nil, opError(op, src, ErrMissingOperand, "%s: missing source or destination operand", op)
	}

	verb := "move"
	if op == "cp" {
		verb = "copy"
	}

	srcPath := fs.Resolve(src)
	if srcPath.IsRoot() {
		return nil, opError(op, src, ErrNotPermitted, "%s: cannot %s '%s': Operation not permitted", op, verb, src)
	}
	srcParent := fs.Lookup(srcPath.Parent())
	item := srcParent.Child(srcPath.Name())
	if item == nil {
		return nil, opError(op, src, ErrNotExist, "%s: cannot stat '%s': No such file or directory", op, src)
	}

	dstPath := fs.Resolve(dst)
	final := dstPath
	if fs.Lookup(dstPath).IsDir() {
		final = dstPath.Join(srcPath.Name())
	}

	dstParent := fs.Lookup(final.Parent())
	if !dstParent.IsDir() {
		return nil, opError(op, dst, ErrNotDir,
			"%s: target '%s' is not a directory or its parent path is invalid", op, dst)
	}

	if existing := dstParent.Child(final.Name()); existing != nil && existing != item {
		switch {
		case item.IsDir() && !existing.IsDir():
			return nil, opError(op, dst, ErrNotDir,
				"%s: cannot overwrite non-directory '%s' with directory '%s'", op, final.Name(), srcPath.Name())
		case !item.IsDir() && existing.IsDir():
			return nil, opError(op, dst, ErrIsDir,
				"%s: cannot overwrite directory '%s' with non-directory '%s'", op, final.Name(), srcPath.Name())
		case item.IsDir() && existing.Len() > 0:
			return nil, opError(op, dst, ErrNotEmpty,
				"%s: cannot overwrite non-empty directory '%s'", op, final.Name())
		}
	}

	return &placement{
		srcPath:   srcPath,
		srcParent: srcParent,
		item:      item,
		final:     final,
		dstParent: dstParent,
	}, nil
}

func (pl *placement) self() bool {
	return pl.final.Equal(pl.srcPath)
}

func (pl *placement) intoItself() bool {
	return pl.item.IsDir() && pl.final.HasPrefix(pl.srcPath) && !pl.self()
}

// Move renames or re-parents the item at src. Corruption flags and the
// current directory follow the moved item.
func (fs *FileSystem) Move(src, dst string) (string, error) {
	pl, err := fs.place("mv", src, dst)
	if err != nil {
		return "", err
	}
	if pl.intoItself() {
		return "", opError("mv", src, ErrInvalidArgument,
			"mv: cannot move '%s' to a subdirectory of itself, '%s'", src, dst)
	}

	msg := fmt.Sprintf("Moved '%s' to '%s'", src, dst)
	if pl.self() {
		return msg, nil
	}

	fs.purgeCorruption(pl.final)
	pl.dstParent.set(pl.final.Name(), pl.item)
	pl.srcParent.remove(pl.srcPath.Name())
	fs.rekeyCorruption(pl.srcPath, pl.final)

	if fs.cwd.HasPrefix(pl.srcPath) {
		fs.cwd = pl.final.Join(fs.cwd[len(pl.srcPath):]...)
	}
	fs.repairCwd()

	fs.logger.Verbose("vfs: mv %s -> %s", pl.srcPath, pl.final)
	return msg, nil
}

// Copy duplicates the item at src using the same destination rules as Move.
// Directories need recursive. Corruption flags are copied with the content.
func (fs *FileSystem) Copy(src, dst string, recursive bool) (string, error) {
	pl, err := fs.place("cp", src, dst)
	if err != nil {
		return "", err
	}
	if pl.item.IsDir() && !recursive {
		return "", opError("cp", src, ErrIsDir, "cp: -r not specified; omitting directory '%s'", src)
	}
	if pl.self() {
		return "", opError("cp", src, ErrInvalidArgument, "cp: '%s' and '%s' are the same file", src, dst)
	}
	if pl.intoItself() {
		return "", opError("cp", src, ErrInvalidArgument,
			"cp: cannot copy a directory, '%s', into itself, '%s'", src, dst)
	}

	fs.purgeCorruption(pl.final)
	pl.dstParent.set(pl.final.Name(), pl.item.Clone())
	fs.copyCorruption(pl.srcPath, pl.final)

	fs.logger.Verbose("vfs: cp %s -> %s", pl.srcPath, pl.final)
	return fmt.Sprintf("Copied '%s' to '%s'", src, dst), nil
}

// WriteFile creates or replaces the file at input with content. The parent
// directory must exist.
func (fs *FileSystem) WriteFile(input, content string) (string, error) {
	p := fs.Resolve(input)
	if p.IsRoot() {
		return "", opError("write", input, ErrIsDir, "write: %s: Is a directory", input)
	}
	if !validName(p.Name()) {
		return "", opError("write", input, ErrInvalidName, "write: invalid file name: %s", input)
	}

	parent := fs.Lookup(p.Parent())
	if !parent.IsDir() {
		return "", opError("write", input, ErrNotExist, "write: %s: No such file or directory", input)
	}
	if parent.Child(p.Name()).IsDir() {
		return "", opError("write", input, ErrIsDir, "write: %s: Is a directory", input)
	}

	parent.set(p.Name(), NewFile(content))
	fs.logger.Verbose("vfs: write %s (%d bytes)", p, len(content))
	return fmt.Sprintf("Wrote %d bytes to '%s'", len(content), input), nil
}

// MakeDirAll creates the directory at input along with any missing parents.
// It succeeds without change when the directory already exists.
func (fs *FileSystem) MakeDirAll(input string) (string, error) {
	p := fs.Resolve(input)
	n := fs.Lookup(p[:1])
	if n == nil {
		return "", opError("mkdir", input, ErrNotExist, "mkdir: cannot create directory ‘%s’: No such file or directory", input)
	}

	for i, name := range p[1:] {
		child := n.Child(name)
		switch {
		case child == nil:
			if !validName(name) {
				return "", opError("mkdir", input, ErrInvalidName, "mkdir: invalid directory name: %s", name)
			}
			child = NewDir(nil)
			n.set(name, child)
			fs.logger.Verbose("vfs: mkdir %s", p[:i+2])
		case !child.IsDir():
			return "", opError("mkdir", input, ErrNotDir, "mkdir: cannot create directory ‘%s’: Not a directory", input)
		}
		n = child
	}
	return fmt.Sprintf("Directory '%s' ready.", input), nil
}
