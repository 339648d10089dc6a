// Package gherkin parses, traverses, and re-renders Gherkin feature files:
// Tokenize for a raw per-line classification, Parse for a full AST, Accept
// or Fold to traverse it, ParseWithHandler to receive it as a stream of
// events without holding the tree, and Write to render it back to text.
package gherkin

import (
	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/parser"
	"github.com/moonrockz/gherkin/source"
	"github.com/moonrockz/gherkin/token"
	"github.com/moonrockz/gherkin/writer"
)

// Parse tokenizes and parses src into a GherkinDocument. On failure it
// returns a nil document and a parser.Errors — always non-empty, currently
// always one element, kept as a slice for a future multi-error mode.
func Parse(src *source.Source) (*ast.GherkinDocument, error) {
	return parser.Parse(src)
}

// ParseWithHandler drives handler over src's document without building an
// intermediate tree the caller has to hold; errors are surfaced through
// handler.OnError rather than as a return value.
func ParseWithHandler(src *source.Source, handler parser.Handler) {
	parser.ParseWithHandler(src, handler)
}

// Tokenize classifies every line of src. It never fails — malformed
// structure surfaces later, at Parse.
func Tokenize(src *source.Source) []token.Token {
	return token.Tokenize(src)
}

// Write renders doc back to canonical Gherkin text.
func Write(doc *ast.GherkinDocument) (string, error) {
	return writer.Write(doc)
}

// Accept drives v over doc's tree in source order.
func Accept(doc *ast.GherkinDocument, v ast.Visitor) {
	ast.Accept(doc, v)
}

// Fold threads an accumulator of type T through doc's tree in source
// order.
func Fold[T any](doc *ast.GherkinDocument, initial T, fns ast.FoldFuncs[T]) T {
	return ast.Fold(doc, initial, fns)
}
