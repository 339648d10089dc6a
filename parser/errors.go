package parser

import (
	"fmt"

	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/token"
)

// Kind is the closed set of parse error kinds.
type Kind int

const (
	UnexpectedToken Kind = iota
	MissingFeature
	UnterminatedDocString
	InconsistentTableCells
	UnknownLanguage
	OrphanTags
	ExamplesUnderNonOutline
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingFeature:
		return "MissingFeature"
	case UnterminatedDocString:
		return "UnterminatedDocString"
	case InconsistentTableCells:
		return "InconsistentTableCells"
	case UnknownLanguage:
		return "UnknownLanguage"
	case OrphanTags:
		return "OrphanTags"
	case ExamplesUnderNonOutline:
		return "ExamplesUnderNonOutline"
	default:
		return "Unknown"
	}
}

// Error is the single shape every parse failure takes: a kind, a
// human-readable message, and the location it occurred at. Consumer-facing
// shape mirrors a conventional {kind, message, location} parse error.
type Error struct {
	Kind     Kind
	Message  string
	Location ast.Location

	Expected []token.Kind // UnexpectedToken only
	Got      token.Kind   // UnexpectedToken only
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

func newError(kind Kind, loc ast.Location, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
}

func errUnexpectedToken(loc ast.Location, expected []token.Kind, got token.Kind) *Error {
	return &Error{
		Kind:     UnexpectedToken,
		Message:  fmt.Sprintf("unexpected %s, expected one of %v", got, expected),
		Location: loc,
		Expected: expected,
		Got:      got,
	}
}

func errMissingFeature(loc ast.Location) *Error {
	return newError(MissingFeature, loc, "expected Feature")
}

func errUnterminatedDocString(openedAt ast.Location) *Error {
	return newError(UnterminatedDocString, openedAt, "doc string opened here is never closed")
}

func errInconsistentTableCells(loc ast.Location, expected, got int) *Error {
	return newError(InconsistentTableCells, loc, "row has %d cells, expected %d", got, expected)
}

func errUnknownLanguage(loc ast.Location, code string) *Error {
	return newError(UnknownLanguage, loc, "unknown language code %q", code)
}

func errOrphanTags(loc ast.Location) *Error {
	return newError(OrphanTags, loc, "tags are not followed by a taggable element")
}

func errExamplesUnderNonOutline(loc ast.Location) *Error {
	return newError(ExamplesUnderNonOutline, loc, "Examples is only valid under a Scenario Outline")
}

// Errors wraps a single primary error into a list, for API uniformity with
// a future multi-error-collecting parse mode. The current contract always
// produces a one-element list.
type Errors []*Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no errors"
	}
	return e[0].Error()
}
