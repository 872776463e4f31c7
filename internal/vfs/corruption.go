package vfs

import (
	"fmt"
	"sort"
	"strings"
)

// MarkCorrupted sets or clears the corruption flag of the item at input.
// Files and directories can both be flagged.
func (fs *FileSystem) MarkCorrupted(input string, corrupted bool) (string, error) {
	p := fs.Resolve(input)
	if fs.Lookup(p) == nil {
		return "", opError("mark", input, ErrNotExist, "Cannot mark corruption: Item '%s' not found.", input)
	}

	if corrupted {
		fs.corrupted[p.key()] = struct{}{}
		fs.logger.Verbose("vfs: corrupted %s", p)
		return fmt.Sprintf("Item '%s' marked as corrupted.", input), nil
	}
	delete(fs.corrupted, p.key())
	fs.logger.Verbose("vfs: restored %s", p)
	return fmt.Sprintf("Item '%s' unmarked as corrupted.", input), nil
}

// IsCorrupted reports whether the resolved input is flagged.
func (fs *FileSystem) IsCorrupted(input string) bool {
	return fs.isCorrupted(fs.Resolve(input))
}

func (fs *FileSystem) isCorrupted(p Path) bool {
	_, ok := fs.corrupted[p.key()]
	return ok
}

// CountCorruptedInDir counts the flagged files directly inside the directory
// at input. Subdirectories are not counted, flagged or not.
func (fs *FileSystem) CountCorruptedInDir(input string) int {
	dirPath := fs.Resolve(input)
	dir := fs.Lookup(dirPath)
	if !dir.IsDir() {
		return 0
	}

	count := 0
	for _, name := range dir.Names() {
		if dir.Child(name).IsFile() && fs.isCorrupted(dirPath.Join(name)) {
			count++
		}
	}
	return count
}

// CorruptedPaths returns the display form of every flagged path, sorted.
func (fs *FileSystem) CorruptedPaths() []string {
	paths := make([]string, 0, len(fs.corrupted))
	for key := range fs.corrupted {
		paths = append(paths, Path(strings.Split(key, "/")).String())
	}
	sort.Strings(paths)
	return paths
}

// subtreeKeys returns the flagged keys at p and below it.
func (fs *FileSystem) subtreeKeys(p Path) []string {
	self := p.key()
	prefix := self + "/"

	var keys []string
	for key := range fs.corrupted {
		if key == self || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (fs *FileSystem) purgeCorruption(p Path) {
	for _, key := range fs.subtreeKeys(p) {
		delete(fs.corrupted, key)
	}
}

func (fs *FileSystem) rekeyCorruption(from, to Path) {
	self := from.key()
	for _, key := range fs.subtreeKeys(from) {
		delete(fs.corrupted, key)
		fs.corrupted[to.key()+strings.TrimPrefix(key, self)] = struct{}{}
	}
}

func (fs *FileSystem) copyCorruption(from, to Path) {
	self := from.key()
	for _, key := range fs.subtreeKeys(from) {
		fs.corrupted[to.key()+strings.TrimPrefix(key, self)] = struct{}{}
	}
}
