// Package parser implements the recursive-descent Gherkin parser: it
// consumes the token stream produced by package token and builds the
// immutable document tree defined by package ast.
package parser

import (
	"strconv"
	"strings"

	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/keyword"
	"github.com/moonrockz/gherkin/source"
	"github.com/moonrockz/gherkin/token"
)

// Parse builds a GherkinDocument from src. On failure it returns the first
// fatal error wrapped in a one-element Errors, and a nil document — no
// partial tree is ever returned.
func Parse(src *source.Source) (*ast.GherkinDocument, error) {
	p := &parser{tokens: token.Tokenize(src)}
	doc, err := p.parseDocument()
	if err != nil {
		return nil, Errors{err}
	}
	return doc, nil
}

type parser struct {
	tokens   []token.Token
	pos      int
	nextID   int
	comments []ast.Comment
}

func (p *parser) skipComments() {
	for p.tokens[p.pos].Kind == token.CommentLine {
		t := p.tokens[p.pos]
		p.comments = append(p.comments, ast.Comment{Location: t.Location, Text: t.Text})
		if p.pos >= len(p.tokens)-1 {
			break
		}
		p.pos++
	}
}

// current returns the next structurally meaningful token, transparently
// collecting any comments along the way — comments never participate in
// the grammar, only in document.comments.
func (p *parser) current() token.Token {
	p.skipComments()
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// skipEmpty discards blank lines that carry no grammatical meaning at the
// current position (between children, around tags, between a step and its
// argument). Contexts where Empty is meaningful — inside a description,
// and as a data-table terminator — consume it explicitly instead.
func (p *parser) skipEmpty() {
	for p.current().Kind == token.Empty {
		p.advance()
	}
}

func (p *parser) id() string {
	id := strconv.Itoa(p.nextID)
	p.nextID++
	return id
}

func (p *parser) parseDocument() (*ast.GherkinDocument, *Error) {
	p.skipEmpty()

	language := keyword.DefaultCode
	if p.current().Kind == token.LanguageLine {
		tok := p.advance()
		if _, ok := keyword.ForCode(tok.Code); !ok {
			return nil, errUnknownLanguage(tok.Location, tok.Code)
		}
		language = tok.Code
	}

	p.skipEmpty()
	tags, tagsLoc := p.maybeParseTags()
	p.skipEmpty()

	var feature *ast.Feature
	switch ct := p.current(); ct.Kind {
	case token.FeatureLine:
		f, err := p.parseFeature(tags, language)
		if err != nil {
			return nil, err
		}
		feature = f
	case token.Eof:
		if len(tags) > 0 {
			return nil, errOrphanTags(tagsLoc)
		}
	default:
		return nil, errMissingFeature(ct.Location)
	}

	p.skipEmpty()
	if ct := p.current(); ct.Kind != token.Eof {
		return nil, errUnexpectedToken(ct.Location, []token.Kind{token.Eof}, ct.Kind)
	}

	return &ast.GherkinDocument{Feature: feature, Comments: p.comments}, nil
}

func (p *parser) parseFeature(tags []ast.Tag, language string) (*ast.Feature, *Error) {
	tok := p.advance()
	desc := p.parseDescription()

	var children []ast.FeatureChild
	for {
		p.skipEmpty()
		if p.current().Kind == token.Eof {
			break
		}

		childTags, tagsLoc := p.maybeParseTags()
		switch ct := p.current(); ct.Kind {
		case token.BackgroundLine:
			if len(childTags) > 0 {
				return nil, errOrphanTags(tagsLoc)
			}
			bg, err := p.parseBackground()
			if err != nil {
				return nil, err
			}
			children = append(children, ast.FeatureChild{Background: bg})
		case token.ScenarioLine:
			sc, err := p.parseScenario(childTags)
			if err != nil {
				return nil, err
			}
			children = append(children, ast.FeatureChild{Scenario: sc})
		case token.RuleLine:
			r, err := p.parseRule(childTags)
			if err != nil {
				return nil, err
			}
			children = append(children, ast.FeatureChild{Rule: r})
		default:
			if len(childTags) > 0 {
				return nil, errOrphanTags(tagsLoc)
			}
			return nil, errUnexpectedToken(ct.Location,
				[]token.Kind{token.BackgroundLine, token.ScenarioLine, token.RuleLine, token.Eof}, ct.Kind)
		}
	}

	return &ast.Feature{
		Location:    tok.Location,
		Tags:        tags,
		Language:    language,
		Keyword:     tok.Keyword,
		Name:        tok.Name,
		Description: desc,
		Children:    children,
	}, nil
}

func (p *parser) parseRule(tags []ast.Tag) (*ast.Rule, *Error) {
	tok := p.advance()
	desc := p.parseDescription()

	var children []ast.RuleChild
ruleChildren:
	for {
		p.skipEmpty()
		mark, markID, markComments := p.pos, p.nextID, len(p.comments)
		childTags, tagsLoc := p.maybeParseTags()
		switch ct := p.current(); ct.Kind {
		case token.BackgroundLine:
			if len(childTags) > 0 {
				return nil, errOrphanTags(tagsLoc)
			}
			bg, err := p.parseBackground()
			if err != nil {
				return nil, err
			}
			children = append(children, ast.RuleChild{Background: bg})
		case token.ScenarioLine:
			sc, err := p.parseScenario(childTags)
			if err != nil {
				return nil, err
			}
			children = append(children, ast.RuleChild{Scenario: sc})
		default:
			if len(childTags) > 0 {
				if ct.Kind != token.RuleLine {
					return nil, errOrphanTags(tagsLoc)
				}
				// The tags belong to the next Rule; leave them for parseFeature.
				p.pos, p.nextID, p.comments = mark, markID, p.comments[:markComments]
			}
			break ruleChildren
		}
	}

	return &ast.Rule{
		Location:    tok.Location,
		ID:          p.id(),
		Tags:        tags,
		Keyword:     tok.Keyword,
		Name:        tok.Name,
		Description: desc,
		Children:    children,
	}, nil
}

func (p *parser) parseBackground() (*ast.Background, *Error) {
	tok := p.advance()
	desc := p.parseDescription()
	steps, err := p.parseSteps()
	if err != nil {
		return nil, err
	}
	return &ast.Background{
		Location:    tok.Location,
		ID:          p.id(),
		Keyword:     tok.Keyword,
		Name:        tok.Name,
		Description: desc,
		Steps:       steps,
	}, nil
}

func (p *parser) parseScenario(tags []ast.Tag) (*ast.Scenario, *Error) {
	tok := p.advance()
	desc := p.parseDescription()
	steps, err := p.parseSteps()
	if err != nil {
		return nil, err
	}

	var examplesList []ast.Examples
	for {
		p.skipEmpty()
		mark, markID, markComments := p.pos, p.nextID, len(p.comments)
		exTags, _ := p.maybeParseTags()
		ct := p.current()
		if ct.Kind != token.ExamplesLine {
			// Tags not followed by Examples belong to whatever follows this
			// Scenario; the enclosing Feature or Rule loop re-reads them and
			// reports OrphanTags if nothing taggable follows.
			p.pos, p.nextID, p.comments = mark, markID, p.comments[:markComments]
			break
		}
		if tok.ScenarioKind != ast.ScenarioKindOutline {
			return nil, errExamplesUnderNonOutline(ct.Location)
		}
		ex, err := p.parseExamples(exTags)
		if err != nil {
			return nil, err
		}
		examplesList = append(examplesList, *ex)
	}

	return &ast.Scenario{
		Location:    tok.Location,
		ID:          p.id(),
		Tags:        tags,
		Kind:        tok.ScenarioKind,
		Keyword:     tok.Keyword,
		Name:        tok.Name,
		Description: desc,
		Steps:       steps,
		Examples:    examplesList,
	}, nil
}

func (p *parser) parseSteps() ([]ast.Step, *Error) {
	var steps []ast.Step
	for {
		p.skipEmpty()
		if p.current().Kind != token.StepLine {
			break
		}
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (p *parser) parseStep() (ast.Step, *Error) {
	tok := p.advance()
	step := ast.Step{
		Location:    tok.Location,
		ID:          p.id(),
		Keyword:     tok.Keyword,
		KeywordType: tok.KeywordType,
		Text:        tok.Text,
	}
	arg, err := p.parseStepArgument()
	if err != nil {
		return ast.Step{}, err
	}
	step.Argument = arg
	return step, nil
}

func (p *parser) parseStepArgument() (*ast.StepArgument, *Error) {
	p.skipEmpty()
	switch p.current().Kind {
	case token.DocStringSeparator:
		return p.parseDocString()
	case token.TableRow:
		return p.parseDataTable()
	default:
		return nil, nil
	}
}

func (p *parser) parseDocString() (*ast.StepArgument, *Error) {
	opener := p.advance()
	prefixLen := 0
	if opener.Location.Column != nil {
		prefixLen = *opener.Location.Column - 1
	}

	var rawLines []string
	for {
		ct := p.current()
		if ct.Kind == token.Eof {
			return nil, errUnterminatedDocString(opener.Location)
		}
		if ct.Kind == token.DocStringSeparator {
			p.advance()
			break
		}
		rawLines = append(rawLines, ct.Text)
		p.advance()
	}

	content := strings.Join(stripIndent(rawLines, prefixLen), "\n")
	return &ast.StepArgument{DocString: &ast.DocString{
		Location:  opener.Location,
		MediaType: opener.MediaType,
		Content:   content,
		Delimiter: opener.Delimiter,
	}}, nil
}

func stripIndent(lines []string, n int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		cut := 0
		for cut < n && cut < len(l) && (l[cut] == ' ' || l[cut] == '\t') {
			cut++
		}
		out[i] = l[cut:]
	}
	return out
}

func (p *parser) parseDataTable() (*ast.StepArgument, *Error) {
	first := p.current()
	var rows []ast.TableRow
	width := -1
	for p.current().Kind == token.TableRow {
		tok := p.advance()
		cells := convertCells(tok)
		if width == -1 {
			width = len(cells)
		} else if len(cells) != width {
			return nil, errInconsistentTableCells(tok.Location, width, len(cells))
		}
		rows = append(rows, ast.TableRow{Location: tok.Location, ID: p.id(), Cells: cells})
	}
	return &ast.StepArgument{DataTable: &ast.DataTable{Location: first.Location, Rows: rows}}, nil
}

func (p *parser) parseExamples(tags []ast.Tag) (*ast.Examples, *Error) {
	tok := p.advance()
	desc := p.parseDescription()
	p.skipEmpty()

	if ct := p.current(); ct.Kind != token.TableRow {
		return nil, errUnexpectedToken(ct.Location, []token.Kind{token.TableRow}, ct.Kind)
	}

	headerTok := p.advance()
	headerCells := convertCells(headerTok)
	header := ast.TableRow{Location: headerTok.Location, ID: p.id(), Cells: headerCells}

	var body []ast.TableRow
	for p.current().Kind == token.TableRow {
		rowTok := p.advance()
		cells := convertCells(rowTok)
		if len(cells) != len(headerCells) {
			return nil, errInconsistentTableCells(rowTok.Location, len(headerCells), len(cells))
		}
		body = append(body, ast.TableRow{Location: rowTok.Location, ID: p.id(), Cells: cells})
	}

	return &ast.Examples{
		Location:    tok.Location,
		ID:          p.id(),
		Tags:        tags,
		Keyword:     tok.Keyword,
		Name:        tok.Name,
		Description: desc,
		TableHeader: &header,
		TableBody:   body,
	}, nil
}

func convertCells(tok token.Token) []ast.TableCell {
	cells := make([]ast.TableCell, len(tok.Cells))
	for i, c := range tok.Cells {
		cells[i] = ast.TableCell{Location: ast.NewLocation(tok.Location.Line, c.Column), Value: c.Value}
	}
	return cells
}

// parseDescription consumes the maximal contiguous run of Other and Empty
// tokens, trimming leading and trailing blank lines while preserving
// interior blank lines and left-whitespace verbatim.
func (p *parser) parseDescription() string {
	var lines []string
	for {
		switch p.current().Kind {
		case token.Other:
			lines = append(lines, p.advance().Text)
		case token.Empty:
			lines = append(lines, "")
			p.advance()
		default:
			return joinTrimmed(lines)
		}
	}
}

func joinTrimmed(lines []string) string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// maybeParseTags collects zero or more consecutive TagLine tokens,
// returning every tag across them in declaration order plus the location
// of the first tag line (used for OrphanTags reporting when nothing valid
// follows).
func (p *parser) maybeParseTags() ([]ast.Tag, ast.Location) {
	var tags []ast.Tag
	var firstLoc ast.Location
	seenFirst := false
	for p.current().Kind == token.TagLine {
		tok := p.advance()
		if !seenFirst {
			firstLoc = tok.Location
			seenFirst = true
		}
		for _, name := range tok.Tags {
			tags = append(tags, ast.Tag{Location: tok.Location, Name: name, ID: p.id()})
		}
	}
	return tags, firstLoc
}
