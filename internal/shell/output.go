package shell

import "fmt"

// Kind selects how a line is styled.
type Kind int

const (
	KindPlain Kind = iota
	KindError
	KindSuccess
	KindWarning
	KindHighlight
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindHighlight:
		return "highlight"
	case KindComment:
		return "comment"
	default:
		return "plain"
	}
}

// Line is one line of command output. Glitch asks the front end to animate
// the line as corrupted.
type Line struct {
	Text   string
	Kind   Kind
	Glitch bool
}

// Output is the result of executing one command line.
type Output struct {
	Lines []Line
	Clear bool
	Exit  bool
}

// Failed reports whether any line is an error.
func (o Output) Failed() bool {
	for _, l := range o.Lines {
		if l.Kind == KindError {
			return true
		}
	}
	return false
}

// Texts returns the text of every line.
func (o Output) Texts() []string {
	texts := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		texts[i] = l.Text
	}
	return texts
}

func (o *Output) line(kind Kind, text string) *Line {
	o.Lines = append(o.Lines, Line{Text: text, Kind: kind})
	return &o.Lines[len(o.Lines)-1]
}

func (o *Output) plain(text string) *Line { return o.line(KindPlain, text) }

func (o *Output) errorf(format string, args ...interface{}) *Line {
	return o.line(KindError, fmt.Sprintf(format, args...))
}

func (o *Output) successf(format string, args ...interface{}) *Line {
	return o.line(KindSuccess, fmt.Sprintf(format, args...))
}

func (o *Output) warnf(format string, args ...interface{}) *Line {
	return o.line(KindWarning, fmt.Sprintf(format, args...))
}

func (o *Output) highlightf(format string, args ...interface{}) *Line {
	return o.line(KindHighlight, fmt.Sprintf(format, args...))
}

func (o *Output) commentf(format string, args ...interface{}) *Line {
	return o.line(KindComment, fmt.Sprintf(format, args...))
}
