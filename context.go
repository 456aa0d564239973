package repeater

import (
	"fmt"

	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/scope"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

// AttachContext connects a catalog context to a scope with default
// settings. Attaching a context twice keeps the settings it already has. At
// a repeater scope it assigns the context with SourceAdd.
func (e *Editor) AttachContext(sc models.Scope, contextID string) error {
	if err := e.checkScope(sc); err != nil {
		return e.reject("attach", err, "scope", sc.String(), "context", contextID)
	}
	if err := e.checkContext(contextID); err != nil {
		return e.reject("attach", err, "scope", sc.String(), "context", contextID)
	}
	if !e.connectable(sc) {
		return e.reject("attach", fmt.Errorf("%w: %s in %s", constants.ErrNotConnectable, sc, e.personality),
			"scope", sc.String(), "context", contextID)
	}

	changed := e.state.Attach(sc, contextID)
	e.revalidate()
	e.logger.Debug("attached", "scope", sc.String(), "context", contextID, "changed", changed)
	return nil
}

// DetachContext disconnects a context from a scope. Repeaters that were
// sharing the removed settings become unassigned and a selection inside them
// is cleared. Detaching a context that is not attached is a no-op.
func (e *Editor) DetachContext(sc models.Scope, contextID string) error {
	if err := e.checkScope(sc); err != nil {
		return e.reject("detach", err, "scope", sc.String(), "context", contextID)
	}

	changed := e.state.Detach(sc, contextID)
	e.revalidate()
	e.logger.Debug("detached", "scope", sc.String(), "context", contextID, "changed", changed)
	return nil
}

// AssignRepeaterContext sets the context a repeater shows. A selected item
// the repeater no longer shows is deselected.
func (e *Editor) AssignRepeaterContext(ref models.RepeaterRef, contextID string, source models.AssignSource) error {
	if err := e.checkRepeater(ref); err != nil {
		return e.reject("assign", err, "repeater", ref.String(), "context", contextID)
	}
	if err := e.checkContext(contextID); err != nil {
		return e.reject("assign", err, "repeater", ref.String(), "context", contextID)
	}
	if !source.Valid() {
		return e.reject("assign", fmt.Errorf("%w: %q", constants.ErrUnknownSource, source),
			"repeater", ref.String(), "context", contextID)
	}
	if source == models.SourceParent && e.personality != selection.Studio {
		return e.reject("assign", fmt.Errorf("%w: parent contexts in %s", constants.ErrNotConnectable, e.personality),
			"repeater", ref.String(), "context", contextID)
	}

	changed := e.state.Assign(ref, contextID, source)
	e.revalidate()
	e.logger.Debug("assigned", "repeater", ref.String(), "context", contextID, "source", string(source), "changed", changed)
	return nil
}

// UnassignRepeater clears a repeater's context.
func (e *Editor) UnassignRepeater(ref models.RepeaterRef) error {
	if err := e.checkRepeater(ref); err != nil {
		return e.reject("unassign", err, "repeater", ref.String())
	}
	changed := e.state.Unassign(ref)
	e.revalidate()
	e.logger.Debug("unassigned", "repeater", ref.String(), "changed", changed)
	return nil
}

// AddRepeater places a new, unassigned repeater in a section and returns its
// component id.
func (e *Editor) AddRepeater(sectionID string) (models.ComponentID, error) {
	if !e.state.HasSection(sectionID) {
		return "", e.reject("add repeater", fmt.Errorf("%w: %q", constants.ErrUnknownSection, sectionID))
	}
	id := models.NewComponentID()
	e.state.AddRepeater(sectionID, id)
	e.logger.Debug("repeater added", "section", sectionID, "component", string(id))
	return id, nil
}

// RemoveRepeater deletes a repeater and any settings it owns. A selection
// inside the repeater is cleared.
func (e *Editor) RemoveRepeater(ref models.RepeaterRef) error {
	if err := e.checkRepeater(ref); err != nil {
		return e.reject("remove repeater", err, "repeater", ref.String())
	}
	e.state.RemoveRepeater(ref)
	e.forget(selection.Deleted{SectionID: ref.SectionID, ComponentID: ref.ComponentID})
	e.logger.Debug("repeater removed", "repeater", ref.String())
	return nil
}

// ResolveEffectiveSettings returns the settings a repeater renders with, or
// nil when it has no context. For a parent assignment the result is the
// enclosing attachment's settings object itself.
func (e *Editor) ResolveEffectiveSettings(ref models.RepeaterRef) (*models.Settings, error) {
	if err := e.checkRepeater(ref); err != nil {
		return nil, err
	}
	return e.state.ResolveEffectiveSettings(ref), nil
}

// InstanceLabels returns the "<label> <n>" label of every attachment,
// recomputed from the current state.
func (e *Editor) InstanceLabels() map[scope.Key]string {
	return e.state.InstanceLabels(e.catalog.Label)
}

// LabelFor returns the instance label a repeater shows, or "" when it
// resolves to no attachment.
func (e *Editor) LabelFor(ref models.RepeaterRef) string {
	return e.state.LabelFor(ref, e.catalog.Label)
}

// ParentOptions lists the attachments a repeater can inherit. Classic
// repeaters cannot inherit, so the list is empty.
func (e *Editor) ParentOptions(ref models.RepeaterRef) ([]scope.Key, error) {
	if err := e.checkRepeater(ref); err != nil {
		return nil, err
	}
	if e.personality != selection.Studio {
		return nil, nil
	}
	return e.state.ParentOptions(ref), nil
}

// ConnectableContexts lists the catalog contexts that can still be attached
// at sc, in catalog order.
func (e *Editor) ConnectableContexts(sc models.Scope) ([]string, error) {
	if err := e.checkScope(sc); err != nil {
		return nil, err
	}
	if !e.connectable(sc) {
		return nil, nil
	}
	return e.state.Connectable(sc, e.catalog.IDs()), nil
}
