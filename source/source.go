// Package source wraps Gherkin input text so the rest of the parser stack
// never touches a raw string directly.
package source

import "strings"

// Source is an immutable wrapper over a block of Gherkin text together with
// its precomputed line index. Construction is the only place line splitting
// happens; every other component addresses text through Line and LineCount.
type Source struct {
	uri   string
	lines []string
}

// FromString builds a Source from in-memory text. uri is an opaque label
// used only for error reporting and may be empty.
func FromString(text string, uri string) *Source {
	return &Source{
		uri:   uri,
		lines: splitLines(text),
	}
}

// splitLines treats \r\n and \n both as terminators. A terminator on the
// final line does not produce a trailing empty line, matching how editors
// show "N lines" for a file ending in a single newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.HasSuffix(normalized, "\n")
	if trimmed {
		normalized = normalized[:len(normalized)-1]
	}
	if normalized == "" {
		if trimmed {
			return []string{""}
		}
		return nil
	}
	return strings.Split(normalized, "\n")
}

// URI returns the opaque source label supplied at construction, if any.
func (s *Source) URI() string {
	return s.uri
}

// LineCount returns the number of addressable lines.
func (s *Source) LineCount() int {
	return len(s.lines)
}

// Line returns the 1-based line n without its terminator, and true. The
// zero value and false are returned for n outside [1, LineCount()].
func (s *Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.lines) {
		return "", false
	}
	return s.lines[n-1], true
}
