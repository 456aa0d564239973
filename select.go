package repeater

import (
	"github.com/surrealdb/repeater.go/pkg/selection"
)

// Select applies a click on target and returns the new selection. Targets
// inside a section or repeater the document does not have select nothing.
func (e *Editor) Select(target selection.Selection) selection.Selection {
	sel := selection.Click(target)
	if !e.exists(sel) {
		e.logger.Debug("selection target missing", "target", target.String())
		sel = selection.Selection{}
	}
	e.selection = sel
	e.logger.Debug("selected", "selection", sel.String())
	return sel
}

// Selection returns the current selection.
func (e *Editor) Selection() selection.Selection {
	return e.selection
}

// Panel returns the settings panel for the current selection.
func (e *Editor) Panel() selection.Panel {
	return selection.PanelFor(e.selection, e.state, e.personality)
}

func (e *Editor) exists(sel selection.Selection) bool {
	switch sel.Kind {
	case selection.None, selection.Page:
		return true
	case selection.Section, selection.ContentTitle, selection.Component:
		return e.state.HasSection(sel.SectionID)
	case selection.Repeater:
		return e.checkRepeater(sel.Ref()) == nil
	case selection.BlankSlotElement:
		if e.checkRepeater(sel.Ref()) != nil {
			return false
		}
		r, _ := e.state.Repeater(sel.Ref())
		return !r.Assigned()
	case selection.RepeaterItem, selection.RepeaterElement:
		if e.checkRepeater(sel.Ref()) != nil {
			return false
		}
		r, _ := e.state.Repeater(sel.Ref())
		return r.Assigned() && e.checkItem(r.AssignedContextID, sel.ItemID) == nil
	}
	return false
}

func (e *Editor) forget(d selection.Deleted) {
	before := e.selection
	e.selection = selection.Forget(e.selection, d)
	if before != e.selection {
		e.logger.Debug("selection cleared", "was", before.String())
	}
}

// revalidate clears the selection when a scope change left it pointing at
// something the document no longer shows.
func (e *Editor) revalidate() {
	if e.exists(e.selection) {
		return
	}
	e.logger.Debug("selection cleared", "was", e.selection.String())
	e.selection = selection.Selection{}
}
