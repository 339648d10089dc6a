// Package token defines the Gherkin token stream: a closed set of per-line
// classifications produced by Tokenize, and the pure classifier behind it.
package token

import "github.com/moonrockz/gherkin/ast"

// Kind discriminates the closed Token sum type.
type Kind int

const (
	FeatureLine Kind = iota
	RuleLine
	BackgroundLine
	ScenarioLine
	ExamplesLine
	StepLine
	DocStringSeparator
	TableRow
	TagLine
	CommentLine
	LanguageLine
	Empty
	Other
	Eof
)

func (k Kind) String() string {
	switch k {
	case FeatureLine:
		return "FeatureLine"
	case RuleLine:
		return "RuleLine"
	case BackgroundLine:
		return "BackgroundLine"
	case ScenarioLine:
		return "ScenarioLine"
	case ExamplesLine:
		return "ExamplesLine"
	case StepLine:
		return "StepLine"
	case DocStringSeparator:
		return "DocStringSeparator"
	case TableRow:
		return "TableRow"
	case TagLine:
		return "TagLine"
	case CommentLine:
		return "CommentLine"
	case LanguageLine:
		return "LanguageLine"
	case Empty:
		return "Empty"
	case Other:
		return "Other"
	case Eof:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Token is the closed sum type the tokenizer emits, one per input line plus
// a final Eof. Only the fields relevant to Kind are populated; the rest
// hold their zero value.
type Token struct {
	Kind     Kind
	Location ast.Location

	Keyword string // *Line headers and StepLine: the matched keyword form
	Name    string // *Line headers: trimmed text after ':'

	ScenarioKind ast.ScenarioKind // ScenarioLine only
	KeywordType  ast.KeywordType  // StepLine only
	Text         string           // StepLine remainder, Other raw text, CommentLine text

	Delimiter string // DocStringSeparator: the exact three-rune opener/closer
	MediaType string // DocStringSeparator: opener's media type, if any

	Cells []Cell // TableRow

	Tags []string // TagLine: each token verbatim, including leading '@'

	Code string // LanguageLine: the language code
}

// Cell is one raw, already-unescaped table cell plus its source column.
type Cell struct {
	Value  string
	Column int
}
