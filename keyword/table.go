// Package keyword holds the compile-time, per-language keyword tables the
// tokenizer consults to classify structural lines. It is a static lookup,
// not a translation service: no runtime language pack loading happens here.
package keyword

import "sort"

// Role identifies which structural header a keyword introduces.
type Role int

const (
	Feature Role = iota
	Rule
	Background
	Scenario
	ScenarioOutline
	Examples
)

func (r Role) String() string {
	switch r {
	case Feature:
		return "Feature"
	case Rule:
		return "Rule"
	case Background:
		return "Background"
	case Scenario:
		return "Scenario"
	case ScenarioOutline:
		return "ScenarioOutline"
	case Examples:
		return "Examples"
	default:
		return "Unknown"
	}
}

// StepBucket identifies which step role a step keyword belongs to.
type StepBucket int

const (
	Given StepBucket = iota
	When
	Then
	And
	But
	Star
)

// Language is one language's complete set of accepted keyword forms. Header
// keyword lists (Feature..Examples) do not carry a trailing separator; step
// keyword lists do, since that separator is part of the stored token text.
type Language struct {
	Code string

	headerKeywords map[Role][]string
	stepKeywords   map[StepBucket][]string

	headerCandidates []headerCandidate
	stepCandidates   []stepCandidate
}

type headerCandidate struct {
	role    Role
	keyword string
}

type stepCandidate struct {
	bucket  StepBucket
	keyword string
}

// newLanguage builds a Language from its keyword lists, pre-sorting every
// candidate list longest-first so matching is a simple linear scan that
// naturally prefers the longest accepted form at a given position.
func newLanguage(code string, header map[Role][]string, step map[StepBucket][]string) *Language {
	lang := &Language{
		Code:           code,
		headerKeywords: header,
		stepKeywords:   step,
	}
	for role, forms := range header {
		for _, form := range forms {
			lang.headerCandidates = append(lang.headerCandidates, headerCandidate{role, form})
		}
	}
	for bucket, forms := range step {
		for _, form := range forms {
			lang.stepCandidates = append(lang.stepCandidates, stepCandidate{bucket, form})
		}
	}
	sort.SliceStable(lang.headerCandidates, func(i, j int) bool {
		return len([]rune(lang.headerCandidates[i].keyword)) > len([]rune(lang.headerCandidates[j].keyword))
	})
	sort.SliceStable(lang.stepCandidates, func(i, j int) bool {
		return len([]rune(lang.stepCandidates[i].keyword)) > len([]rune(lang.stepCandidates[j].keyword))
	})
	return lang
}

// HeaderKeywords returns the accepted forms for a structural role, in the
// order they were declared (not match order).
func (l *Language) HeaderKeywords(role Role) []string {
	return l.headerKeywords[role]
}

// StepKeywords returns the accepted forms for a step bucket, each already
// carrying its trailing separator.
func (l *Language) StepKeywords(bucket StepBucket) []string {
	return l.stepKeywords[bucket]
}

// DefaultCode is the language assumed when no `# language:` directive is
// present.
const DefaultCode = "en"

// languages is built by a var initializer rather than an init() function:
// the table is a plain compile-time constant, not a side effect that needs
// its own lifecycle hook.
var languages = buildLanguages()

func buildLanguages() map[string]*Language {
	table := map[string]*Language{}

	table["en"] = newLanguage("en",
		map[Role][]string{
			Feature:         {"Feature", "Business Need", "Ability"},
			Rule:            {"Rule"},
			Background:      {"Background"},
			Scenario:        {"Scenario", "Example"},
			ScenarioOutline: {"Scenario Outline", "Scenario Template"},
			Examples:        {"Examples", "Scenarios"},
		},
		map[StepBucket][]string{
			Given: {"Given "},
			When:  {"When "},
			Then:  {"Then "},
			And:   {"And "},
			But:   {"But "},
			Star:  {"* "},
		},
	)

	table["fr"] = newLanguage("fr",
		map[Role][]string{
			Feature:         {"Fonctionnalité"},
			Rule:            {"Règle"},
			Background:      {"Contexte"},
			Scenario:        {"Scénario", "Exemple"},
			ScenarioOutline: {"Plan du scénario", "Plan du Scénario"},
			Examples:        {"Exemples"},
		},
		map[StepBucket][]string{
			Given: {"Soit ", "Étant donné ", "Étant donnée "},
			When:  {"Quand "},
			Then:  {"Alors "},
			And:   {"Et "},
			But:   {"Mais "},
			Star:  {"* "},
		},
	)

	return table
}

// ForCode returns the language registered under code, and whether it exists.
func ForCode(code string) (*Language, bool) {
	lang, ok := languages[code]
	return lang, ok
}
