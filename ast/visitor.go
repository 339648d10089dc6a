package ast

// Visitor is the external traversal facade: one visit_* call per node,
// descent handled entirely by Accept. Embed NoOpVisitor to implement only
// the node kinds a given consumer cares about.
type Visitor interface {
	VisitComment(c *Comment)
	VisitTag(t *Tag)
	VisitFeature(f *Feature)
	VisitRule(r *Rule)
	VisitBackground(b *Background)
	VisitScenario(s *Scenario)
	VisitStep(s *Step)
	VisitDocString(d *DocString)
	VisitDataTable(d *DataTable)
	VisitTableRow(r *TableRow)
	VisitTableCell(c *TableCell)
	VisitExamples(e *Examples)
}

// NoOpVisitor implements Visitor with no-op defaults for every node kind.
type NoOpVisitor struct{}

func (NoOpVisitor) VisitComment(*Comment)     {}
func (NoOpVisitor) VisitTag(*Tag)             {}
func (NoOpVisitor) VisitFeature(*Feature)     {}
func (NoOpVisitor) VisitRule(*Rule)           {}
func (NoOpVisitor) VisitBackground(*Background) {}
func (NoOpVisitor) VisitScenario(*Scenario)   {}
func (NoOpVisitor) VisitStep(*Step)           {}
func (NoOpVisitor) VisitDocString(*DocString) {}
func (NoOpVisitor) VisitDataTable(*DataTable) {}
func (NoOpVisitor) VisitTableRow(*TableRow)   {}
func (NoOpVisitor) VisitTableCell(*TableCell) {}
func (NoOpVisitor) VisitExamples(*Examples)   {}

// visitorWalker adapts a Visitor to the Walker engine: every Begin call
// performs the single visit_* call spec.md describes, and every End call is
// a no-op, since Visitor has no begin/end distinction.
type visitorWalker struct {
	v Visitor
}

func (a visitorWalker) Comment(c *Comment) Control       { a.v.VisitComment(c); return Continue }
func (a visitorWalker) Tag(t *Tag) Control                { a.v.VisitTag(t); return Continue }
func (a visitorWalker) BeginFeature(f *Feature) Control   { a.v.VisitFeature(f); return Continue }
func (a visitorWalker) EndFeature(*Feature) Control       { return Continue }
func (a visitorWalker) BeginRule(r *Rule) Control         { a.v.VisitRule(r); return Continue }
func (a visitorWalker) EndRule(*Rule) Control              { return Continue }
func (a visitorWalker) BeginBackground(b *Background) Control {
	a.v.VisitBackground(b)
	return Continue
}
func (a visitorWalker) EndBackground(*Background) Control { return Continue }
func (a visitorWalker) BeginScenario(s *Scenario) Control  { a.v.VisitScenario(s); return Continue }
func (a visitorWalker) EndScenario(*Scenario) Control      { return Continue }
func (a visitorWalker) Step(s *Step) Control               { a.v.VisitStep(s); return Continue }
func (a visitorWalker) DocString(d *DocString) Control     { a.v.VisitDocString(d); return Continue }
func (a visitorWalker) BeginDataTable(d *DataTable) Control {
	a.v.VisitDataTable(d)
	return Continue
}
func (a visitorWalker) EndDataTable(*DataTable) Control { return Continue }
func (a visitorWalker) TableRow(r *TableRow) Control    { a.v.VisitTableRow(r); return Continue }
func (a visitorWalker) TableCell(c *TableCell) Control  { a.v.VisitTableCell(c); return Continue }
func (a visitorWalker) BeginExamples(e *Examples) Control {
	a.v.VisitExamples(e)
	return Continue
}
func (a visitorWalker) EndExamples(*Examples) Control { return Continue }

// Accept walks doc in source order, calling v's visit_* methods.
func Accept(doc *GherkinDocument, v Visitor) {
	Walk(doc, visitorWalker{v: v})
}
