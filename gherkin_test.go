package gherkin

import (
	"testing"

	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/parser"
	"github.com/moonrockz/gherkin/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: minimal feature.
func TestSeed_MinimalFeature(t *testing.T) {
	doc, err := Parse(source.FromString("Feature: Minimal\n  Scenario: One\n    Given a step\n", ""))
	require.NoError(t, err)
	assert.Equal(t, "Minimal", doc.Feature.Name)
}

// S2: tags.
func TestSeed_Tags(t *testing.T) {
	doc, err := Parse(source.FromString("@smoke\nFeature: Tagged\n  Scenario: S\n    Given g\n", ""))
	require.NoError(t, err)
	require.Len(t, doc.Feature.Tags, 1)
	assert.Equal(t, "@smoke", doc.Feature.Tags[0].Name)
}

// S3: inconsistent table width.
func TestSeed_InconsistentTableWidth(t *testing.T) {
	_, err := Parse(source.FromString(
		"Feature: F\n  Scenario: S\n    Given a table:\n      | a | b |\n      | 1 |\n", ""))
	require.Error(t, err)
	assert.Equal(t, parser.InconsistentTableCells, err.(parser.Errors)[0].Kind)
}

// S4: doc string with media type, round-trip.
func TestSeed_DocStringRoundTrip(t *testing.T) {
	text := "Feature: D\n  Scenario: X\n    Given body:\n      ```json\n      {\"k\":\"v\"}\n      ```\n"
	doc, err := Parse(source.FromString(text, ""))
	require.NoError(t, err)

	rendered, err := Write(doc)
	require.NoError(t, err)

	reparsed, err := Parse(source.FromString(rendered, ""))
	require.NoError(t, err)
	assert.Equal(t, doc.Feature.Name, reparsed.Feature.Name)
	assert.Equal(t,
		doc.Feature.Children[0].Scenario.Steps[0].Argument.DocString.Content,
		reparsed.Feature.Children[0].Scenario.Steps[0].Argument.DocString.Content)
}

// S5: i18n French.
func TestSeed_FrenchFeature(t *testing.T) {
	text := "# language: fr\nFonctionnalité: Connexion\n  Scénario: Succès\n    Soit un utilisateur\n"
	doc, err := Parse(source.FromString(text, ""))
	require.NoError(t, err)
	assert.Equal(t, "fr", doc.Feature.Language)
}

// S6: orphan scenario.
func TestSeed_OrphanScenario(t *testing.T) {
	_, err := Parse(source.FromString("  Scenario: Orphan\n    Given g\n", ""))
	require.Error(t, err)
	assert.Equal(t, parser.MissingFeature, err.(parser.Errors)[0].Kind)
}

// Traversal equivalence: Accept, Fold, and ParseWithHandler must observe
// the exact same step texts in the exact same order.
func TestTraversalEquivalence(t *testing.T) {
	text := "Feature: F\n" +
		"  Background: setup\n" +
		"    Given base\n" +
		"  Scenario: S\n" +
		"    Given a\n" +
		"    When b\n" +
		"    Then c\n"
	src := source.FromString(text, "")

	doc, err := Parse(src)
	require.NoError(t, err)

	var viaVisitor []string
	var v stepCollectingVisitor
	v.into = &viaVisitor
	Accept(doc, &v)

	viaFold := Fold(doc, []string{}, ast.FoldFuncs[[]string]{
		OnStep: ast.Continuing(func(acc []string, s *ast.Step) []string {
			return append(acc, s.Text)
		}),
	})

	var viaHandler []string
	h := &stepCollectingHandler{into: &viaHandler}
	ParseWithHandler(src, h)

	assert.Equal(t, viaVisitor, viaFold)
	assert.Equal(t, viaFold, viaHandler)
}

type stepCollectingVisitor struct {
	ast.NoOpVisitor
	into *[]string
}

func (v *stepCollectingVisitor) VisitStep(s *ast.Step) { *v.into = append(*v.into, s.Text) }

type stepCollectingHandler struct {
	parser.NoOpHandler
	into *[]string
}

func (h *stepCollectingHandler) OnStep(s *ast.Step) { *h.into = append(*h.into, s.Text) }

// Location monotonicity: every step's location strictly advances in
// traversal order.
func TestLocationMonotonicity(t *testing.T) {
	text := "Feature: F\n  Scenario: S\n    Given a\n    When b\n"
	doc, err := Parse(source.FromString(text, ""))
	require.NoError(t, err)

	var last ast.Location
	first := true
	Fold(doc, struct{}{}, ast.FoldFuncs[struct{}]{
		OnStep: ast.Continuing(func(acc struct{}, s *ast.Step) struct{} {
			if !first {
				assert.True(t, last.Less(s.Location))
			}
			last = s.Location
			first = false
			return acc
		}),
	})
}
