package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *GherkinDocument {
	return &GherkinDocument{
		Feature: &Feature{
			Location: NewLineLocation(1),
			Name:     "Minimal",
			Children: []FeatureChild{
				{Scenario: &Scenario{
					Location: NewLineLocation(2),
					Name:     "One",
					Steps: []Step{
						{Location: NewLineLocation(3), Keyword: "Given ", Text: "a step", KeywordType: Context},
					},
				}},
			},
		},
		Comments: []Comment{
			{Location: NewLineLocation(4), Text: "# trailing"},
		},
	}
}

type recordingVisitor struct {
	NoOpVisitor
	kinds []string
}

func (r *recordingVisitor) VisitFeature(f *Feature)   { r.kinds = append(r.kinds, "feature:"+f.Name) }
func (r *recordingVisitor) VisitScenario(s *Scenario) { r.kinds = append(r.kinds, "scenario:"+s.Name) }
func (r *recordingVisitor) VisitStep(s *Step)         { r.kinds = append(r.kinds, "step:"+s.Text) }
func (r *recordingVisitor) VisitComment(c *Comment)   { r.kinds = append(r.kinds, "comment:"+c.Text) }

func TestAccept_SourceOrder(t *testing.T) {
	rv := &recordingVisitor{}
	Accept(sampleDoc(), rv)

	assert.Equal(t, []string{
		"feature:Minimal",
		"scenario:One",
		"step:a step",
		"comment:# trailing",
	}, rv.kinds)
}

func TestFold_CountsSteps(t *testing.T) {
	count := Fold(sampleDoc(), 0, FoldFuncs[int]{
		OnStep: Continuing(func(acc int, _ *Step) int { return acc + 1 }),
	})
	assert.Equal(t, 1, count)
}

func TestFold_Stop(t *testing.T) {
	var seen []string
	Fold(sampleDoc(), struct{}{}, FoldFuncs[struct{}]{
		OnFeature: func(acc struct{}, f *Feature) (struct{}, Control) {
			seen = append(seen, f.Name)
			return acc, Stop
		},
		OnScenario: func(acc struct{}, s *Scenario) (struct{}, Control) {
			seen = append(seen, s.Name)
			return acc, Continue
		},
	})

	require.Len(t, seen, 1)
	assert.Equal(t, "Minimal", seen[0])
}

func TestFold_SkipChildren(t *testing.T) {
	var steps int
	Fold(sampleDoc(), struct{}{}, FoldFuncs[struct{}]{
		OnScenario: func(acc struct{}, _ *Scenario) (struct{}, Control) {
			return acc, SkipChildren
		},
		OnStep: func(acc struct{}, _ *Step) (struct{}, Control) {
			steps++
			return acc, Continue
		},
	})

	assert.Equal(t, 0, steps)
}
