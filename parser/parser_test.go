package parser

import (
	"testing"

	"github.com/moonrockz/gherkin/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MinimalFeature(t *testing.T) {
	src := source.FromString("Feature: Minimal\n  Scenario: One\n    Given a step\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, doc.Feature)

	assert.Equal(t, "Minimal", doc.Feature.Name)
	assert.Equal(t, "en", doc.Feature.Language)
	require.Len(t, doc.Feature.Children, 1)

	sc := doc.Feature.Children[0].Scenario
	require.NotNil(t, sc)
	assert.Equal(t, "One", sc.Name)
	require.Len(t, sc.Steps, 1)
	assert.Equal(t, "a step", sc.Steps[0].Text)
}

func TestParse_Tags(t *testing.T) {
	src := source.FromString("@smoke @regression\nFeature: Tagged\n  @wip\n  Scenario: S\n    Given g\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	require.Len(t, doc.Feature.Tags, 2)
	assert.Equal(t, "@smoke", doc.Feature.Tags[0].Name)
	assert.Equal(t, "@regression", doc.Feature.Tags[1].Name)

	sc := doc.Feature.Children[0].Scenario
	require.Len(t, sc.Tags, 1)
	assert.Equal(t, "@wip", sc.Tags[0].Name)
}

func TestParse_InconsistentTableCells(t *testing.T) {
	src := source.FromString(
		"Feature: F\n  Scenario: S\n    Given a table:\n      | a | b |\n      | 1 |\n", "")
	_, err := Parse(src)
	require.Error(t, err)

	errs := err.(Errors)
	require.Len(t, errs, 1)
	assert.Equal(t, InconsistentTableCells, errs[0].Kind)
}

func TestParse_DocStringRoundTripShape(t *testing.T) {
	src := source.FromString(
		"Feature: D\n  Scenario: X\n    Given body:\n      ```json\n      {\"k\":\"v\"}\n      ```\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	step := doc.Feature.Children[0].Scenario.Steps[0]
	require.NotNil(t, step.Argument)
	require.NotNil(t, step.Argument.DocString)
	assert.Equal(t, "json", step.Argument.DocString.MediaType)
	assert.Equal(t, "```", step.Argument.DocString.Delimiter)
	assert.Equal(t, `{"k":"v"}`, step.Argument.DocString.Content)
}

func TestParse_FrenchLanguageDirective(t *testing.T) {
	src := source.FromString(
		"# language: fr\nFonctionnalité: Connexion\n  Scénario: Succès\n    Soit un utilisateur\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	assert.Equal(t, "fr", doc.Feature.Language)
	assert.Equal(t, "Connexion", doc.Feature.Name)
	sc := doc.Feature.Children[0].Scenario
	assert.Equal(t, "Succès", sc.Name)
	assert.Equal(t, "un utilisateur", sc.Steps[0].Text)
}

func TestParse_OrphanScenarioMissingFeature(t *testing.T) {
	src := source.FromString("  Scenario: Orphan\n    Given g\n", "")
	_, err := Parse(src)
	require.Error(t, err)

	errs := err.(Errors)
	require.Len(t, errs, 1)
	assert.Equal(t, MissingFeature, errs[0].Kind)
}

func TestParse_UnknownLanguage(t *testing.T) {
	src := source.FromString("# language: xx\nFeature: F\n", "")
	_, err := Parse(src)
	require.Error(t, err)
	assert.Equal(t, UnknownLanguage, err.(Errors)[0].Kind)
}

func TestParse_OrphanTags(t *testing.T) {
	src := source.FromString("@tag\n", "")
	_, err := Parse(src)
	require.Error(t, err)
	assert.Equal(t, OrphanTags, err.(Errors)[0].Kind)
}

func TestParse_ExamplesUnderNonOutline(t *testing.T) {
	src := source.FromString(
		"Feature: F\n  Scenario: S\n    Given g\n\n    Examples:\n      | a |\n      | 1 |\n", "")
	_, err := Parse(src)
	require.Error(t, err)
	assert.Equal(t, ExamplesUnderNonOutline, err.(Errors)[0].Kind)
}

func TestParse_ScenarioOutlineWithExamples(t *testing.T) {
	src := source.FromString(
		"Feature: F\n"+
			"  Scenario Outline: S\n"+
			"    Given a <thing>\n\n"+
			"    Examples:\n"+
			"      | thing |\n"+
			"      | rock  |\n"+
			"      | paper |\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	sc := doc.Feature.Children[0].Scenario
	require.Len(t, sc.Examples, 1)
	ex := sc.Examples[0]
	require.NotNil(t, ex.TableHeader)
	assert.Equal(t, "thing", ex.TableHeader.Cells[0].Value)
	require.Len(t, ex.TableBody, 2)
	assert.Equal(t, "rock", ex.TableBody[0].Cells[0].Value)
	assert.Equal(t, "paper", ex.TableBody[1].Cells[0].Value)
}

func TestParse_BackgroundAndRule(t *testing.T) {
	src := source.FromString(
		"Feature: F\n"+
			"  Background: setup\n"+
			"    Given a baseline\n"+
			"  Rule: a rule\n"+
			"    Scenario: under rule\n"+
			"      Given x\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Feature.Children, 2)

	bg := doc.Feature.Children[0].Background
	require.NotNil(t, bg)
	assert.Equal(t, "setup", bg.Name)

	rule := doc.Feature.Children[1].Rule
	require.NotNil(t, rule)
	require.Len(t, rule.Children, 1)
	assert.Equal(t, "under rule", rule.Children[0].Scenario.Name)
}

func TestParse_Description(t *testing.T) {
	src := source.FromString(
		"Feature: F\n"+
			"  As a user\n"+
			"\n"+
			"  I want a thing\n"+
			"  Scenario: S\n"+
			"    Given g\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "  As a user\n\n  I want a thing", doc.Feature.Description)
}

func TestParse_UnterminatedDocString(t *testing.T) {
	src := source.FromString("Feature: F\n  Scenario: S\n    Given g:\n      \"\"\"\n      unterminated\n", "")
	_, err := Parse(src)
	require.Error(t, err)
	assert.Equal(t, UnterminatedDocString, err.(Errors)[0].Kind)
}

func TestParse_DataTableAsStepArgument(t *testing.T) {
	src := source.FromString(
		"Feature: F\n  Scenario: S\n    Given a table:\n      | a | b |\n      | 1 | 2 |\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	step := doc.Feature.Children[0].Scenario.Steps[0]
	require.NotNil(t, step.Argument)
	require.NotNil(t, step.Argument.DataTable)
	require.Len(t, step.Argument.DataTable.Rows, 2)
	assert.Equal(t, "1", step.Argument.DataTable.Rows[1].Cells[0].Value)
}

func TestParse_MonotoneIDs(t *testing.T) {
	src := source.FromString(
		"Feature: F\n"+
			"  Background: b\n"+
			"    Given x\n"+
			"  Scenario: S\n"+
			"    Given y\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)

	bg := doc.Feature.Children[0].Background
	sc := doc.Feature.Children[1].Scenario
	ids := []string{bg.ID, bg.Steps[0].ID, sc.ID, sc.Steps[0].ID}
	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "id %s reused", id)
		seen[id] = true
	}
}

func TestParse_CommentsCollectedOutOfTree(t *testing.T) {
	src := source.FromString(
		"# top comment\nFeature: F\n  # inner comment\n  Scenario: S\n    Given g\n", "")
	doc, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Comments, 2)
	assert.Equal(t, "# top comment", doc.Comments[0].Text)
	assert.Equal(t, "# inner comment", doc.Comments[1].Text)
}
