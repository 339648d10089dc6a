package keyword

import "strings"

// HeaderMatch is the result of successfully matching a structural header
// keyword at the start of a trimmed line.
type HeaderMatch struct {
	Role    Role
	Keyword string // the matched form, without the trailing colon
	Rest    string // trimmed remainder after the colon
}

// MatchHeader tries every header keyword across all roles, longest first,
// and succeeds only if the keyword is immediately followed by ':'. Because
// candidates are pre-sorted by descending length, "Scenario Outline:" wins
// over a hypothetical shorter "Scenario:" prefix collision.
func MatchHeader(trimmed string, lang *Language) (HeaderMatch, bool) {
	for _, c := range lang.headerCandidates {
		if !strings.HasPrefix(trimmed, c.keyword) {
			continue
		}
		after := trimmed[len(c.keyword):]
		if !strings.HasPrefix(after, ":") {
			continue
		}
		return HeaderMatch{
			Role:    c.role,
			Keyword: c.keyword,
			Rest:    strings.TrimSpace(after[1:]),
		}, true
	}
	return HeaderMatch{}, false
}

// StepMatch is the result of successfully matching a step keyword at the
// start of a trimmed line.
type StepMatch struct {
	Bucket  StepBucket
	Keyword string // includes the trailing separator, e.g. "Given " or "* "
	Text    string // trimmed remainder after the keyword
}

// MatchStep tries every step keyword, longest first. Step keyword forms
// already carry their trailing separator, so a bare prefix match is the
// full contract.
func MatchStep(trimmed string, lang *Language) (StepMatch, bool) {
	for _, c := range lang.stepCandidates {
		if !strings.HasPrefix(trimmed, c.keyword) {
			continue
		}
		return StepMatch{
			Bucket:  c.bucket,
			Keyword: c.keyword,
			Text:    strings.TrimSpace(trimmed[len(c.keyword):]),
		}, true
	}
	return StepMatch{}, false
}
