// Package writer re-renders a parsed Gherkin document back to text,
// canonicalizing spacing and table alignment along the way. It is not a
// byte-exact inverse of the parser: parse(write(parse(s))) is structurally
// equal to parse(s), not necessarily textually equal to s.
package writer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/moonrockz/gherkin/ast"
)

// MalformedTree is raised only for AST invariant violations a well-formed
// parse never produces (e.g. an Examples block under a plain Scenario) —
// a programmer error, not a data error.
type MalformedTree struct {
	Reason string
}

func (e *MalformedTree) Error() string {
	return fmt.Sprintf("malformed tree: %s", e.Reason)
}

// Write renders doc as canonical Gherkin text.
func Write(doc *ast.GherkinDocument) (string, error) {
	w := &writer{}
	if err := w.writeDocument(doc); err != nil {
		return "", err
	}
	return w.b.String(), nil
}

type writer struct {
	b        strings.Builder
	comments []ast.Comment
	nextC    int
}

func (w *writer) writeDocument(doc *ast.GherkinDocument) error {
	w.comments = doc.Comments

	if doc.Feature == nil {
		w.flushRemainingComments()
		return nil
	}

	w.flushCommentsBefore(doc.Feature.Location)
	if doc.Feature.Language != "" && doc.Feature.Language != "en" {
		w.b.WriteString("# language: ")
		w.b.WriteString(doc.Feature.Language)
		w.b.WriteString("\n")
	}
	if err := w.writeFeature(doc.Feature); err != nil {
		return err
	}
	w.flushRemainingComments()
	return nil
}

func (w *writer) flushCommentsBefore(loc ast.Location) {
	for w.nextC < len(w.comments) && w.comments[w.nextC].Location.Less(loc) {
		w.writeLine(0, w.comments[w.nextC].Text)
		w.nextC++
	}
}

func (w *writer) flushRemainingComments() {
	for w.nextC < len(w.comments) {
		w.writeLine(0, w.comments[w.nextC].Text)
		w.nextC++
	}
}

func (w *writer) writeLine(indent int, text string) {
	w.b.WriteString(strings.Repeat("  ", indent))
	w.b.WriteString(text)
	w.b.WriteString("\n")
}

func (w *writer) writeTags(indent int, tags []ast.Tag, oneLine bool) {
	if len(tags) == 0 {
		return
	}
	if oneLine {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name
		}
		w.writeLine(indent, strings.Join(names, " "))
		return
	}
	for _, t := range tags {
		w.writeLine(indent, t.Name)
	}
}

func headerLine(keyword, name string) string {
	if name == "" {
		return strings.TrimRight(keyword, " ") + ":"
	}
	return strings.TrimRight(keyword, " ") + ": " + name
}

// writeDescription writes desc verbatim, one line per line, with no added
// indentation: a description's stored text already carries whatever
// leading whitespace its source had (the parser never strips per-line
// indent, only leading/trailing blank lines), so indenting it again here
// would shift it on every round trip.
func (w *writer) writeDescription(desc string) {
	if desc == "" {
		return
	}
	for _, line := range strings.Split(desc, "\n") {
		if line == "" {
			w.b.WriteString("\n")
			continue
		}
		w.b.WriteString(line)
		w.b.WriteString("\n")
	}
}

func (w *writer) writeFeature(f *ast.Feature) error {
	w.writeTags(0, f.Tags, false)
	w.flushCommentsBefore(f.Location)
	w.writeLine(0, headerLine(f.Keyword, f.Name))
	w.writeDescription(f.Description)

	for _, child := range f.Children {
		switch {
		case child.Background != nil:
			w.flushCommentsBefore(child.Background.Location)
			w.writeBackground(child.Background, 1)
		case child.Scenario != nil:
			w.flushCommentsBefore(child.Scenario.Location)
			if err := w.writeScenario(child.Scenario, 1); err != nil {
				return err
			}
		case child.Rule != nil:
			w.flushCommentsBefore(child.Rule.Location)
			if err := w.writeRule(child.Rule); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) writeRule(r *ast.Rule) error {
	w.writeTags(1, r.Tags, false)
	w.writeLine(1, headerLine(r.Keyword, r.Name))
	w.writeDescription(r.Description)

	for _, child := range r.Children {
		switch {
		case child.Background != nil:
			w.flushCommentsBefore(child.Background.Location)
			w.writeBackground(child.Background, 2)
		case child.Scenario != nil:
			w.flushCommentsBefore(child.Scenario.Location)
			if err := w.writeScenario(child.Scenario, 2); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) writeBackground(b *ast.Background, indent int) {
	w.writeLine(indent, headerLine(b.Keyword, b.Name))
	w.writeDescription(b.Description)
	w.writeSteps(b.Steps, indent+1)
}

func (w *writer) writeScenario(s *ast.Scenario, indent int) error {
	w.writeTags(indent, s.Tags, true)
	w.writeLine(indent, headerLine(s.Keyword, s.Name))
	w.writeDescription(s.Description)
	w.writeSteps(s.Steps, indent+1)

	if len(s.Examples) > 0 && s.Kind != ast.ScenarioKindOutline {
		return &MalformedTree{Reason: "Examples attached to a non-outline Scenario"}
	}
	for _, ex := range s.Examples {
		w.flushCommentsBefore(ex.Location)
		w.writeExamples(&ex, indent)
	}
	return nil
}

func (w *writer) writeSteps(steps []ast.Step, indent int) {
	for _, s := range steps {
		w.flushCommentsBefore(s.Location)
		w.writeLine(indent, strings.TrimRight(s.Keyword, " ")+" "+s.Text)
		if s.Argument == nil {
			continue
		}
		if s.Argument.DocString != nil {
			w.writeDocString(s.Argument.DocString, indent+1)
		}
		if s.Argument.DataTable != nil {
			w.writeTable(s.Argument.DataTable.Rows, indent+1)
		}
	}
}

func (w *writer) writeDocString(d *ast.DocString, indent int) {
	opener := d.Delimiter
	if d.MediaType != "" {
		opener += d.MediaType
	}
	w.writeLine(indent, opener)
	if d.Content != "" {
		for _, line := range strings.Split(d.Content, "\n") {
			w.writeLine(indent, line)
		}
	}
	w.writeLine(indent, d.Delimiter)
}

func (w *writer) writeExamples(e *ast.Examples, indent int) {
	w.writeTags(indent, e.Tags, true)
	w.writeLine(indent, headerLine(e.Keyword, e.Name))
	w.writeDescription(e.Description)

	var rows []ast.TableRow
	if e.TableHeader != nil {
		rows = append(rows, *e.TableHeader)
	}
	rows = append(rows, e.TableBody...)
	w.writeTable(rows, indent+1)
}

// writeTable column-aligns rows by rune width and re-escapes each cell in
// the fixed order \ -> \\, | -> \|, newline -> \n, so an escape introduced
// by one substitution is never re-escaped by the next.
func (w *writer) writeTable(rows []ast.TableRow, indent int) {
	if len(rows) == 0 {
		return
	}
	width := len(rows[0].Cells)
	escaped := make([][]string, len(rows))
	widths := make([]int, width)
	for i, row := range rows {
		escaped[i] = make([]string, width)
		for j, cell := range row.Cells {
			v := escapeCell(cell.Value)
			escaped[i][j] = v
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
	}
	for _, row := range escaped {
		var b strings.Builder
		b.WriteString("| ")
		for j, cell := range row {
			b.WriteString(padRight(cell, widths[j]))
			b.WriteString(" |")
			if j != len(row)-1 {
				b.WriteString(" ")
			}
		}
		w.writeLine(indent, b.String())
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `|`, `\|`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// padRight left-aligns cell content by appending fill spaces after it,
// matching the conventional rendering every real Gherkin table uses
// (content flush against the left "|", padding trailing before the next
// separator). Round-trip equality never depends on this choice, since
// cell values are compared after parsing strips the padding back out.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
