package token

import (
	"regexp"
	"strings"

	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/keyword"
	"github.com/moonrockz/gherkin/source"
)

// Mode is the tokenizer's small internal state machine: Normal or inside a
// doc string waiting for its matching delimiter.
type Mode int

const (
	Normal Mode = iota
	InDocString
)

// State is the full input to the pure classifier: the Normal/InDocString
// mode plus the bookkeeping classify_line needs to behave as a function of
// its arguments alone (active language for keyword matching, and whether a
// structural line has already been seen, which gates the language
// directive).
type State struct {
	Mode        Mode
	Delimiter   string
	Language    *keyword.Language
	SeenContent bool
}

// InitialState is the state classify_line starts from at the top of a
// source.
func InitialState() State {
	lang, _ := keyword.ForCode(keyword.DefaultCode)
	return State{Mode: Normal, Language: lang}
}

var languageDirectiveRe = regexp.MustCompile(`^#\s*language\s*:\s*([A-Za-z][A-Za-z-]*)\s*$`)
var tagFieldRe = regexp.MustCompile(`^@[A-Za-z0-9_\-.:]+$`)

// ClassifyLine is the pure per-line classifier described by the tokenizer's
// priority-ordered rules. It never fails: every line classifies to some
// token.
func ClassifyLine(line string, lineNumber int, state State) (Token, State) {
	trimmed := strings.TrimSpace(line)

	// Rule 1: inside a doc string, only the matching delimiter closes it.
	if state.Mode == InDocString {
		if trimmed == state.Delimiter {
			next := state
			next.Mode = Normal
			next.Delimiter = ""
			return Token{
				Kind:      DocStringSeparator,
				Location:  anchorLocation(line, lineNumber),
				Delimiter: state.Delimiter,
			}, next
		}
		return Token{
			Kind:     Other,
			Location: anchorLocation(line, lineNumber),
			Text:     line,
		}, state
	}

	// Rule 2: empty or whitespace-only.
	if trimmed == "" {
		return Token{Kind: Empty, Location: ast.NewLineLocation(lineNumber)}, state
	}

	// Rule 3: comments and the language directive.
	if strings.HasPrefix(trimmed, "#") {
		if !state.SeenContent {
			if m := languageDirectiveRe.FindStringSubmatch(trimmed); m != nil {
				next := state
				if lang, ok := keyword.ForCode(m[1]); ok {
					next.Language = lang
				}
				return Token{
					Kind:     LanguageLine,
					Location: anchorLocation(line, lineNumber),
					Code:     m[1],
				}, next
			}
		}
		return Token{
			Kind:     CommentLine,
			Location: anchorLocation(line, lineNumber),
			Text:     trimmed,
		}, state
	}

	// Rule 4: tags.
	if strings.HasPrefix(trimmed, "@") {
		if tags, ok := tryTagLine(trimmed); ok {
			next := state
			next.SeenContent = true
			return Token{
				Kind:     TagLine,
				Location: ast.NewLocation(lineNumber, leadingWhitespaceRunes(line)+1),
				Tags:     tags,
			}, next
		}
	}

	// Rule 5: table rows.
	if strings.HasPrefix(trimmed, "|") {
		next := state
		next.SeenContent = true
		return Token{
			Kind:     TableRow,
			Location: ast.NewLocation(lineNumber, leadingWhitespaceRunes(line)+1),
			Cells:    parseTableCells(line),
		}, next
	}

	// Rule 6: doc string openers.
	if delim, mediaType, ok := matchDocStringOpener(trimmed); ok {
		next := state
		next.Mode = InDocString
		next.Delimiter = delim
		next.SeenContent = true
		return Token{
			Kind:      DocStringSeparator,
			Location:  anchorLocation(line, lineNumber),
			Delimiter: delim,
			MediaType: mediaType,
		}, next
	}

	// Rule 7: structural header keywords.
	if m, ok := keyword.MatchHeader(trimmed, state.Language); ok {
		next := state
		next.SeenContent = true
		tok := Token{
			Location: ast.NewLocation(lineNumber, leadingWhitespaceRunes(line)+1),
			Keyword:  m.Keyword,
			Name:     m.Rest,
		}
		switch m.Role {
		case keyword.Feature:
			tok.Kind = FeatureLine
		case keyword.Rule:
			tok.Kind = RuleLine
		case keyword.Background:
			tok.Kind = BackgroundLine
		case keyword.Scenario:
			tok.Kind = ScenarioLine
			tok.ScenarioKind = ast.ScenarioKindScenario
		case keyword.ScenarioOutline:
			tok.Kind = ScenarioLine
			tok.ScenarioKind = ast.ScenarioKindOutline
		case keyword.Examples:
			tok.Kind = ExamplesLine
		}
		return tok, next
	}

	// Rule 8: step keywords.
	if m, ok := keyword.MatchStep(trimmed, state.Language); ok {
		next := state
		next.SeenContent = true
		return Token{
			Kind:        StepLine,
			Location:    ast.NewLocation(lineNumber, leadingWhitespaceRunes(line)+1),
			Keyword:     m.Keyword,
			KeywordType: stepKeywordType(m.Bucket),
			Text:        m.Text,
		}, next
	}

	// Rule 9: everything else is raw text.
	next := state
	next.SeenContent = true
	return Token{
		Kind:     Other,
		Location: anchorLocation(line, lineNumber),
		Text:     line,
	}, next
}

func stepKeywordType(bucket keyword.StepBucket) ast.KeywordType {
	switch bucket {
	case keyword.Given:
		return ast.Context
	case keyword.When:
		return ast.Action
	case keyword.Then:
		return ast.Outcome
	case keyword.And, keyword.But:
		return ast.Conjunction
	default:
		return ast.Unknown
	}
}

func tryTagLine(trimmed string) ([]string, bool) {
	fields := strings.Fields(trimmed)
	for _, f := range fields {
		if !tagFieldRe.MatchString(f) {
			return nil, false
		}
	}
	return fields, true
}

func matchDocStringOpener(trimmed string) (delimiter, mediaType string, ok bool) {
	for _, delim := range []string{`"""`, "```"} {
		if strings.HasPrefix(trimmed, delim) {
			return delim, strings.TrimSpace(trimmed[len(delim):]), true
		}
	}
	return "", "", false
}

func leadingWhitespaceRunes(line string) int {
	count := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			count++
			continue
		}
		break
	}
	return count
}

// anchorLocation points at the first non-whitespace rune of line, or omits
// the column entirely when line has none.
func anchorLocation(line string, lineNumber int) ast.Location {
	if strings.TrimSpace(line) == "" {
		return ast.NewLineLocation(lineNumber)
	}
	return ast.NewLocation(lineNumber, leadingWhitespaceRunes(line)+1)
}

// Tokenize eagerly classifies every line of src and appends a trailing Eof.
func Tokenize(src *source.Source) []Token {
	tokens := make([]Token, 0, src.LineCount()+1)
	state := InitialState()
	for n := 1; n <= src.LineCount(); n++ {
		line, _ := src.Line(n)
		var tok Token
		tok, state = ClassifyLine(line, n, state)
		tokens = append(tokens, tok)
	}
	tokens = append(tokens, Token{Kind: Eof, Location: ast.NewLineLocation(src.LineCount() + 1)})
	return tokens
}

// Lexer is the lazy, pull-based counterpart to Tokenize: it advances only
// when Next is called and carries its State internally. Abandoning a Lexer
// leaks nothing; all memory is owned by its Source.
type Lexer struct {
	src   *source.Source
	line  int
	state State
	done  bool
}

// NewLexer returns a Lexer positioned before the first line of src.
func NewLexer(src *source.Source) *Lexer {
	return &Lexer{src: src, state: InitialState()}
}

// Next returns the next token and true, or the zero Token and false once
// Eof has already been returned.
func (l *Lexer) Next() (Token, bool) {
	if l.done {
		return Token{}, false
	}
	l.line++
	if l.line > l.src.LineCount() {
		l.done = true
		return Token{Kind: Eof, Location: ast.NewLineLocation(l.src.LineCount() + 1)}, true
	}
	line, _ := l.src.Line(l.line)
	var tok Token
	tok, l.state = ClassifyLine(line, l.line, l.state)
	return tok, true
}
