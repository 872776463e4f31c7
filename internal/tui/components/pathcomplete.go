package components

// CompletionSource returns the full-word candidates for the last word of
// line, e.g. shell.(*Shell).Complete.
type CompletionSource func(line string) []string

// PathCompleter provides tab-completion and cycling for a command line.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(sh.Complete)
//
//	// On Tab press:
//	input.SetValue(completer.Next(input.Value()))
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	source     CompletionSource
	base       string
	matches    []string
	cycleIndex int
	lastOutput string
}

// NewPathCompleter creates a completer backed by source.
func NewPathCompleter(source CompletionSource) *PathCompleter {
	return &PathCompleter{source: source}
}

// Next returns line with its last word completed.
// The first press extends the word to the longest common prefix of the
// candidates. Once that is exhausted, repeated presses cycle through them.
func (c *PathCompleter) Next(line string) string {
	if c.matches != nil && line == c.lastOutput {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		c.lastOutput = c.base + c.matches[c.cycleIndex]
		return c.lastOutput
	}

	base, word := splitLastWord(line)
	matches := c.source(line)
	if len(matches) == 0 {
		c.Reset()
		return line
	}

	common := longestCommonPrefix(matches)
	if len(common) > len(word) {
		c.Reset()
		return base + common
	}

	c.base = base
	c.matches = matches
	c.cycleIndex = 0
	c.lastOutput = base + matches[0]
	return c.lastOutput
}

// Matches returns the candidates being cycled, or nil.
func (c *PathCompleter) Matches() []string {
	return c.matches
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.base = ""
	c.matches = nil
	c.cycleIndex = 0
	c.lastOutput = ""
}

// splitLastWord splits line before the word under completion. Blanks
// escaped with a backslash belong to the word.
//
//	"cat doc"     → ("cat ", "doc")
//	"cat "        → ("cat ", "")
//	"cat my\\ do" → ("cat ", "my\\ do")
//	"he"          → ("", "he")
func splitLastWord(line string) (base, word string) {
	for i := len(line) - 1; i >= 0; i-- {
		if (line[i] == ' ' || line[i] == '\t') && !escapedAt(line, i) {
			return line[:i+1], line[i+1:]
		}
	}
	return "", line
}

// escapedAt reports whether line[i] follows an odd run of backslashes.
func escapedAt(line string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// longestCommonPrefix finds the longest common prefix among strs.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	prefix := strs[0]
	for _, s := range strs[1:] {
		i := 0
		for i < len(prefix) && i < len(s) && prefix[i] == s[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return prefix
}
