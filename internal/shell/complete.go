package shell

import (
	"sort"
	"strings"
)

// pathCommands take filesystem paths as arguments.
var pathCommands = map[string]bool{
	"cd": true, "ls": true, "cat": true, "head": true, "tail": true, "grep": true,
	"mkdir": true, "touch": true, "write": true, "rm": true, "mv": true, "cp": true,
	"find": true, "tree": true, "scan": true, "parse": true, "restore": true,
}

// shellSpecial are the characters escapeWord protects with a backslash.
const shellSpecial = " \t\\'\"`$;&|<>()"

// Complete returns the sorted candidates for the last word of line. The
// first word completes to command names; arguments of path commands
// complete to children of the directory typed so far, with "/" appended to
// directories. cd only offers directories. Path candidates are
// backslash-escaped so they parse back as a single word.
func (s *Shell) Complete(line string) []string {
	words, current := splitWords(line)

	if len(words) == 0 {
		return s.completeCommand(current)
	}

	cmd := strings.ToLower(words[0])
	switch {
	case cmd == "help":
		return s.completeCommand(current)
	case pathCommands[cmd]:
		return s.completePath(current, cmd == "cd")
	}
	return nil
}

func (s *Shell) completeCommand(prefix string) []string {
	var matches []string
	for _, name := range s.Commands() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

func (s *Shell) completePath(word string, dirsOnly bool) []string {
	dirInput, prefix, lead := ".", word, ""
	if i := strings.LastIndex(word, "/"); i >= 0 {
		dirInput, prefix, lead = word[:i], word[i+1:], word[:i+1]
		if dirInput == "" {
			dirInput = "/"
		}
	}

	dir := s.fs.NodeAt(dirInput)
	if !dir.IsDir() {
		return nil
	}

	var matches []string
	for _, name := range dir.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		child := dir.Child(name)
		if dirsOnly && !child.IsDir() {
			continue
		}
		if child.IsDir() {
			name += "/"
		}
		matches = append(matches, escapeWord(lead+name))
	}
	sort.Strings(matches)
	return matches
}

// splitWords splits line on unescaped blanks, removing the escapes. current
// is the unfinished last word, empty when line ends in a blank.
func splitWords(line string) (words []string, current string) {
	var (
		b       strings.Builder
		escaped bool
		pending bool
	)
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			pending = true
		case r == ' ' || r == '\t':
			if pending {
				words = append(words, b.String())
				b.Reset()
				pending = false
			}
		default:
			b.WriteRune(r)
			pending = true
		}
	}
	if pending {
		current = b.String()
	}
	return words, current
}

func escapeWord(word string) string {
	if !strings.ContainsAny(word, shellSpecial) {
		return word
	}
	var b strings.Builder
	for _, r := range word {
		if strings.ContainsRune(shellSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
