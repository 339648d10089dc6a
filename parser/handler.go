package parser

import (
	"github.com/moonrockz/gherkin/ast"
	"github.com/moonrockz/gherkin/source"
	"github.com/moonrockz/gherkin/token"
)

// Handler receives a push-style stream of begin/end events over a parsed
// document, without ever materializing the tree for the caller. Begin/end
// pairs nest strictly in source order, matching Accept and Fold exactly —
// all three facades share the single ast.Walk traversal engine, so there is
// no separate descent logic to drift out of sync.
type Handler interface {
	OnComment(*ast.Comment)
	OnTag(*ast.Tag)

	OnFeature(*ast.Feature)
	OnEndFeature(*ast.Feature)

	OnRule(*ast.Rule)
	OnEndRule(*ast.Rule)

	OnBackground(*ast.Background)
	OnEndBackground(*ast.Background)

	OnScenario(*ast.Scenario)
	OnEndScenario(*ast.Scenario)

	OnStep(*ast.Step)

	OnDocString(*ast.DocString)
	OnDataTable(*ast.DataTable)
	OnEndDataTable(*ast.DataTable)
	OnTableRow(*ast.TableRow)
	OnTableCell(*ast.TableCell)

	OnExamples(*ast.Examples)
	OnEndExamples(*ast.Examples)

	// OnError is called at most once, in place of any further events, when
	// parsing fails. No begin event is ever left without its matching end.
	OnError(*Error)
}

// NoOpHandler implements Handler with no-op methods, so a caller can embed
// it and override only the events it cares about.
type NoOpHandler struct{}

func (NoOpHandler) OnComment(*ast.Comment)          {}
func (NoOpHandler) OnTag(*ast.Tag)                  {}
func (NoOpHandler) OnFeature(*ast.Feature)          {}
func (NoOpHandler) OnEndFeature(*ast.Feature)       {}
func (NoOpHandler) OnRule(*ast.Rule)                {}
func (NoOpHandler) OnEndRule(*ast.Rule)             {}
func (NoOpHandler) OnBackground(*ast.Background)    {}
func (NoOpHandler) OnEndBackground(*ast.Background) {}
func (NoOpHandler) OnScenario(*ast.Scenario)         {}
func (NoOpHandler) OnEndScenario(*ast.Scenario)      {}
func (NoOpHandler) OnStep(*ast.Step)                 {}
func (NoOpHandler) OnDocString(*ast.DocString)       {}
func (NoOpHandler) OnDataTable(*ast.DataTable)       {}
func (NoOpHandler) OnEndDataTable(*ast.DataTable)    {}
func (NoOpHandler) OnTableRow(*ast.TableRow)         {}
func (NoOpHandler) OnTableCell(*ast.TableCell)       {}
func (NoOpHandler) OnExamples(*ast.Examples)         {}
func (NoOpHandler) OnEndExamples(*ast.Examples)      {}
func (NoOpHandler) OnError(*Error)                   {}

// ParseWithHandler parses src and drives handler over the result. On parse
// failure, handler.OnError is called once with the first fatal error and no
// other event fires. It is implemented by parsing to a complete AST and
// then running ast.Walk over it — the same traversal every other facade
// uses — rather than a second, independently maintained event-emitting
// parse pass.
func ParseWithHandler(src *source.Source, handler Handler) {
	p := &parser{tokens: token.Tokenize(src)}
	doc, err := p.parseDocument()
	if err != nil {
		handler.OnError(err)
		return
	}
	ast.Walk(doc, handlerWalker{h: handler})
}

type handlerWalker struct{ h Handler }

func (w handlerWalker) Comment(c *ast.Comment) ast.Control {
	w.h.OnComment(c)
	return ast.Continue
}

func (w handlerWalker) Tag(t *ast.Tag) ast.Control {
	w.h.OnTag(t)
	return ast.Continue
}

func (w handlerWalker) BeginFeature(f *ast.Feature) ast.Control {
	w.h.OnFeature(f)
	return ast.Continue
}

func (w handlerWalker) EndFeature(f *ast.Feature) ast.Control {
	w.h.OnEndFeature(f)
	return ast.Continue
}

func (w handlerWalker) BeginRule(r *ast.Rule) ast.Control {
	w.h.OnRule(r)
	return ast.Continue
}

func (w handlerWalker) EndRule(r *ast.Rule) ast.Control {
	w.h.OnEndRule(r)
	return ast.Continue
}

func (w handlerWalker) BeginBackground(b *ast.Background) ast.Control {
	w.h.OnBackground(b)
	return ast.Continue
}

func (w handlerWalker) EndBackground(b *ast.Background) ast.Control {
	w.h.OnEndBackground(b)
	return ast.Continue
}

func (w handlerWalker) BeginScenario(s *ast.Scenario) ast.Control {
	w.h.OnScenario(s)
	return ast.Continue
}

func (w handlerWalker) EndScenario(s *ast.Scenario) ast.Control {
	w.h.OnEndScenario(s)
	return ast.Continue
}

func (w handlerWalker) Step(s *ast.Step) ast.Control {
	w.h.OnStep(s)
	return ast.Continue
}

func (w handlerWalker) DocString(d *ast.DocString) ast.Control {
	w.h.OnDocString(d)
	return ast.Continue
}

func (w handlerWalker) BeginDataTable(d *ast.DataTable) ast.Control {
	w.h.OnDataTable(d)
	return ast.Continue
}

func (w handlerWalker) EndDataTable(d *ast.DataTable) ast.Control {
	w.h.OnEndDataTable(d)
	return ast.Continue
}

func (w handlerWalker) TableRow(r *ast.TableRow) ast.Control {
	w.h.OnTableRow(r)
	for i := range r.Cells {
		w.h.OnTableCell(&r.Cells[i])
	}
	return ast.Continue
}

func (w handlerWalker) TableCell(*ast.TableCell) ast.Control {
	return ast.Continue
}

func (w handlerWalker) BeginExamples(e *ast.Examples) ast.Control {
	w.h.OnExamples(e)
	return ast.Continue
}

func (w handlerWalker) EndExamples(e *ast.Examples) ast.Control {
	w.h.OnEndExamples(e)
	return ast.Continue
}
