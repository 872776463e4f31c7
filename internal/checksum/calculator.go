package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Calculator computes content signatures for files in the virtual filesystem.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization:
//  1. Remove "#" and "//" line comments outside quoted strings
//  2. Convert to lowercase
//  3. Collapse whitespace to single spaces
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// Short abbreviates a hex checksum for display.
func Short(sum string) string {
	const n = 12
	if len(sum) <= n {
		return sum
	}
	return sum[:n]
}

func (c SHA256) normalize(content string) string {
	return strings.ToLower(strings.Join(strings.Fields(removeComments(content)), " "))
}

// removeComments drops shell-style "#" and C-style "//" line comments.
// Text between matching single or double quotes is kept as is, and a
// backslash escapes the next byte inside quotes.
func removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	var quote byte // 0 outside quotes
	for i := 0; i < len(content); i++ {
		ch := content[i]
		switch {
		case quote != 0:
			b.WriteByte(ch)
			if ch == '\\' && i+1 < len(content) {
				i++
				b.WriteByte(content[i])
			} else if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
			b.WriteByte(ch)
		case ch == '#' || ch == '/' && i+1 < len(content) && content[i+1] == '/':
			b.WriteByte(' ')
			end := strings.IndexByte(content[i:], '\n')
			if end < 0 {
				return b.String()
			}
			// Resume at the newline so it is kept.
			i += end - 1
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
