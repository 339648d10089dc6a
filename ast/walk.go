package ast

// Control is returned from every Walker callback to steer descent. It backs
// both the flow-controlled Fold and the push handler; the external Visitor
// always returns Continue, since its contract has no skip/stop notion.
type Control int

const (
	Continue Control = iota
	SkipChildren
	Stop
)

// Walker is the single traversal engine every facade (Visitor, Fold, the
// parser's push handler) is built on top of, so that the three stay
// semantically aligned by construction rather than by separately
// maintained descent logic. Begin callbacks for container nodes, Step (whose
// child is its argument) and TableRow (whose children are its cells) return
// a Control that steers descent; every other callback's return value is
// ignored for descent purposes but still observed for Stop.
type Walker interface {
	Comment(c *Comment) Control
	Tag(t *Tag) Control

	BeginFeature(f *Feature) Control
	EndFeature(f *Feature) Control

	BeginRule(r *Rule) Control
	EndRule(r *Rule) Control

	BeginBackground(b *Background) Control
	EndBackground(b *Background) Control

	BeginScenario(s *Scenario) Control
	EndScenario(s *Scenario) Control

	Step(s *Step) Control

	DocString(d *DocString) Control

	BeginDataTable(d *DataTable) Control
	EndDataTable(d *DataTable) Control

	TableRow(r *TableRow) Control
	TableCell(c *TableCell) Control

	BeginExamples(e *Examples) Control
	EndExamples(e *Examples) Control
}

// NoOpWalker is embeddable by Walker implementations that only care about a
// handful of node kinds.
type NoOpWalker struct{}

func (NoOpWalker) Comment(*Comment) Control           { return Continue }
func (NoOpWalker) Tag(*Tag) Control                   { return Continue }
func (NoOpWalker) BeginFeature(*Feature) Control      { return Continue }
func (NoOpWalker) EndFeature(*Feature) Control        { return Continue }
func (NoOpWalker) BeginRule(*Rule) Control            { return Continue }
func (NoOpWalker) EndRule(*Rule) Control              { return Continue }
func (NoOpWalker) BeginBackground(*Background) Control { return Continue }
func (NoOpWalker) EndBackground(*Background) Control  { return Continue }
func (NoOpWalker) BeginScenario(*Scenario) Control    { return Continue }
func (NoOpWalker) EndScenario(*Scenario) Control      { return Continue }
func (NoOpWalker) Step(*Step) Control                 { return Continue }
func (NoOpWalker) DocString(*DocString) Control       { return Continue }
func (NoOpWalker) BeginDataTable(*DataTable) Control  { return Continue }
func (NoOpWalker) EndDataTable(*DataTable) Control    { return Continue }
func (NoOpWalker) TableRow(*TableRow) Control         { return Continue }
func (NoOpWalker) TableCell(*TableCell) Control       { return Continue }
func (NoOpWalker) BeginExamples(*Examples) Control    { return Continue }
func (NoOpWalker) EndExamples(*Examples) Control      { return Continue }

// commentCursor emits comments in source order as the walk passes their
// location, matching the writer's "immediately before the first node whose
// location is >= the comment's location" placement rule.
type commentCursor struct {
	comments []Comment
	next     int
}

func newCommentCursor(comments []Comment) *commentCursor {
	return &commentCursor{comments: comments}
}

func (c *commentCursor) emitBefore(w Walker, loc Location, stopped *bool) {
	for c.next < len(c.comments) && c.comments[c.next].Location.Less(loc) {
		comment := c.comments[c.next]
		c.next++
		if w.Comment(&comment) == Stop {
			*stopped = true
			return
		}
	}
}

func (c *commentCursor) emitRemaining(w Walker, stopped *bool) {
	for c.next < len(c.comments) {
		comment := c.comments[c.next]
		c.next++
		if w.Comment(&comment) == Stop {
			*stopped = true
			return
		}
	}
}

// Walk drives w over doc in strict source order: pre-order with respect to
// parent/child, tags before body, steps before examples, comments
// interleaved by location.
func Walk(doc *GherkinDocument, w Walker) {
	stopped := false
	cursor := newCommentCursor(doc.Comments)

	if doc.Feature != nil {
		walkFeature(doc.Feature, w, cursor, &stopped)
	}
	if !stopped {
		cursor.emitRemaining(w, &stopped)
	}
}

func walkFeature(f *Feature, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, f.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginFeature(f)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range f.Tags {
			if walkTag(&f.Tags[i], w, cursor, stopped); *stopped {
				return
			}
		}
		for i := range f.Children {
			walkFeatureChild(&f.Children[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
	}
	if w.EndFeature(f) == Stop {
		*stopped = true
	}
}

func walkTag(t *Tag, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, t.Location, stopped)
	if *stopped {
		return
	}
	if w.Tag(t) == Stop {
		*stopped = true
	}
}

func walkFeatureChild(c *FeatureChild, w Walker, cursor *commentCursor, stopped *bool) {
	switch {
	case c.Background != nil:
		walkBackground(c.Background, w, cursor, stopped)
	case c.Scenario != nil:
		walkScenario(c.Scenario, w, cursor, stopped)
	case c.Rule != nil:
		walkRule(c.Rule, w, cursor, stopped)
	}
}

func walkRule(r *Rule, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, r.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginRule(r)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range r.Tags {
			if walkTag(&r.Tags[i], w, cursor, stopped); *stopped {
				return
			}
		}
		for i := range r.Children {
			rc := r.Children[i]
			if rc.Background != nil {
				walkBackground(rc.Background, w, cursor, stopped)
			} else if rc.Scenario != nil {
				walkScenario(rc.Scenario, w, cursor, stopped)
			}
			if *stopped {
				return
			}
		}
	}
	if w.EndRule(r) == Stop {
		*stopped = true
	}
}

func walkBackground(b *Background, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, b.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginBackground(b)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range b.Steps {
			walkStep(&b.Steps[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
	}
	if w.EndBackground(b) == Stop {
		*stopped = true
	}
}

func walkScenario(s *Scenario, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, s.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginScenario(s)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range s.Tags {
			if walkTag(&s.Tags[i], w, cursor, stopped); *stopped {
				return
			}
		}
		for i := range s.Steps {
			walkStep(&s.Steps[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
		for i := range s.Examples {
			walkExamples(&s.Examples[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
	}
	if w.EndScenario(s) == Stop {
		*stopped = true
	}
}

func walkStep(s *Step, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, s.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.Step(s)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl == SkipChildren || s.Argument == nil {
		return
	}
	if s.Argument.DocString != nil {
		cursor.emitBefore(w, s.Argument.DocString.Location, stopped)
		if *stopped {
			return
		}
		if w.DocString(s.Argument.DocString) == Stop {
			*stopped = true
		}
		return
	}
	if s.Argument.DataTable != nil {
		walkDataTable(s.Argument.DataTable, w, cursor, stopped)
	}
}

func walkDataTable(d *DataTable, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, d.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginDataTable(d)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range d.Rows {
			walkTableRow(&d.Rows[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
	}
	if w.EndDataTable(d) == Stop {
		*stopped = true
	}
}

func walkTableRow(r *TableRow, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, r.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.TableRow(r)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl == SkipChildren {
		return
	}
	for i := range r.Cells {
		if w.TableCell(&r.Cells[i]) == Stop {
			*stopped = true
			return
		}
	}
}

func walkExamples(e *Examples, w Walker, cursor *commentCursor, stopped *bool) {
	cursor.emitBefore(w, e.Location, stopped)
	if *stopped {
		return
	}
	ctrl := w.BeginExamples(e)
	if ctrl == Stop {
		*stopped = true
		return
	}
	if ctrl != SkipChildren {
		for i := range e.Tags {
			if walkTag(&e.Tags[i], w, cursor, stopped); *stopped {
				return
			}
		}
		if e.TableHeader != nil {
			walkTableRow(e.TableHeader, w, cursor, stopped)
			if *stopped {
				return
			}
		}
		for i := range e.TableBody {
			walkTableRow(&e.TableBody[i], w, cursor, stopped)
			if *stopped {
				return
			}
		}
	}
	if w.EndExamples(e) == Stop {
		*stopped = true
	}
}
