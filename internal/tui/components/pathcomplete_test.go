package components

import (
	"strings"
	"testing"
)

// staticSource completes the last word against a fixed candidate list.
func staticSource(candidates ...string) CompletionSource {
	return func(line string) []string {
		_, word := splitLastWord(line)
		var out []string
		for _, c := range candidates {
			if strings.HasPrefix(c, word) {
				out = append(out, c)
			}
		}
		return out
	}
}

func TestPathCompleter_SingleMatch(t *testing.T) {
	c := NewPathCompleter(staticSource("documents/", "downloads/", "scripts/"))

	if got := c.Next("cd sc"); got != "cd scripts/" {
		t.Errorf("Next() = %q, want %q", got, "cd scripts/")
	}
}

func TestPathCompleter_CommonPrefixFirst(t *testing.T) {
	c := NewPathCompleter(staticSource("documents/", "downloads/", "scripts/"))

	if got := c.Next("cd d"); got != "cd do" {
		t.Errorf("first Tab = %q, want common prefix %q", got, "cd do")
	}
}

func TestPathCompleter_CyclesThroughMatches(t *testing.T) {
	c := NewPathCompleter(staticSource("alpha/", "beta/", "gamma/"))

	r1 := c.Next("ls ")
	r2 := c.Next(r1)
	r3 := c.Next(r2)
	r4 := c.Next(r3)

	want := []string{"ls alpha/", "ls beta/", "ls gamma/", "ls alpha/"}
	for i, got := range []string{r1, r2, r3, r4} {
		if got != want[i] {
			t.Errorf("Tab %d = %q, want %q", i+1, got, want[i])
		}
	}
	if len(c.Matches()) != 3 {
		t.Errorf("Matches() = %v, want 3 candidates", c.Matches())
	}
}

func TestPathCompleter_ResetStopsCycling(t *testing.T) {
	c := NewPathCompleter(staticSource("alpha/", "beta/"))

	r1 := c.Next("ls ")
	c.Reset()
	r2 := c.Next("ls ")

	if r1 != r2 {
		t.Errorf("expected same result after reset, got: %s vs %s", r1, r2)
	}
	if c.Matches() == nil {
		t.Error("expected cycling state after Next")
	}
}

func TestPathCompleter_EditedLineRecomputes(t *testing.T) {
	c := NewPathCompleter(staticSource("alpha/", "beta/", "bravo/"))

	c.Next("ls ")
	// "b" is already the common prefix of beta/ and bravo/, so cycling starts.
	if got := c.Next("ls b"); got != "ls beta/" {
		t.Errorf("Next() = %q, want %q", got, "ls beta/")
	}
}

func TestPathCompleter_NoMatches(t *testing.T) {
	c := NewPathCompleter(staticSource("alpha/"))

	if got := c.Next("ls zz"); got != "ls zz" {
		t.Errorf("expected unchanged input, got: %s", got)
	}
	if c.Matches() != nil {
		t.Error("expected no cycling state")
	}
}

func TestPathCompleter_EscapedBlank(t *testing.T) {
	c := NewPathCompleter(staticSource(`my\ files/`, `my\ notes.txt`))

	if got := c.Next("cat my"); got != `cat my\ ` {
		t.Errorf("first Tab = %q, want %q", got, `cat my\ `)
	}
	if got := c.Next(`cat my\ n`); got != `cat my\ notes.txt` {
		t.Errorf("Next() = %q, want %q", got, `cat my\ notes.txt`)
	}
}

func TestSplitLastWord(t *testing.T) {
	tests := []struct {
		input    string
		wantBase string
		wantWord string
	}{
		{"", "", ""},
		{"he", "", "he"},
		{"cat doc", "cat ", "doc"},
		{"cat ", "cat ", ""},
		{"mv a  b", "mv a  ", "b"},
		{`cat my\ fi`, "cat ", `my\ fi`},
		{`cat a\\ b`, `cat a\\ `, "b"},
	}

	for _, tt := range tests {
		base, word := splitLastWord(tt.input)
		if base != tt.wantBase || word != tt.wantWord {
			t.Errorf("splitLastWord(%q) = (%q, %q), want (%q, %q)",
				tt.input, base, word, tt.wantBase, tt.wantWord)
		}
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"scripts/"}, "scripts/"},
		{[]string{"documents/", "downloads/"}, "do"},
		{[]string{"Notes", "notes"}, ""},
	}

	for _, tt := range tests {
		if got := longestCommonPrefix(tt.in); got != tt.want {
			t.Errorf("longestCommonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
