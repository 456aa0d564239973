package scope

import (
	"slices"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// Attach connects a context to a scope with default settings. Attaching a
// context that is already attached keeps its settings. At a repeater scope
// Attach is Assign with SourceAdd. It reports whether anything changed.
func (s *State) Attach(scope models.Scope, contextID string) bool {
	if contextID == "" {
		return false
	}
	if scope.Kind == models.ScopeRepeater {
		return s.Assign(scope.Ref(), contextID, models.SourceAdd)
	}

	list := s.attachments(scope)
	if list == nil || find(*list, contextID) != nil {
		return false
	}
	*list = append(*list, &Attachment{ContextID: contextID, Settings: models.DefaultSettings()})
	return true
}

// Detach disconnects a context from a scope and discards its settings.
// Repeaters whose parent assignment resolved to that attachment lose their
// assignment. At a repeater scope Detach clears the repeater's own
// assignment when it matches contextID.
func (s *State) Detach(scope models.Scope, contextID string) bool {
	if scope.Kind == models.ScopeRepeater {
		r := s.repeater(scope.Ref())
		if r == nil || r.AssignedContextID != contextID {
			return false
		}
		r.clear()
		return true
	}

	list := s.attachments(scope)
	if list == nil {
		return false
	}
	i := slices.IndexFunc(*list, func(a *Attachment) bool { return a.ContextID == contextID })
	if i < 0 {
		return false
	}

	removed := Key{Scope: scope, ContextID: contextID}
	for _, sec := range s.sections {
		for _, r := range sec.repeaters {
			if r.Source != models.SourceParent || r.AssignedContextID != contextID {
				continue
			}
			if key, ok := s.resolveParent(r); ok && key == removed {
				r.clear()
			}
		}
	}

	*list = slices.Delete(*list, i, i+1)
	return true
}

// Assign sets a repeater's context. SourceAdd gives the repeater its own
// default settings; SourceParent shares the settings of the nearest
// enclosing attachment. Re-assigning the same context and source keeps the
// current settings.
func (s *State) Assign(ref models.RepeaterRef, contextID string, source models.AssignSource) bool {
	r := s.repeater(ref)
	if r == nil || contextID == "" || !source.Valid() {
		return false
	}
	if r.AssignedContextID == contextID && r.Source == source {
		return false
	}

	r.AssignedContextID = contextID
	r.Source = source
	r.settings = nil
	if source == models.SourceAdd {
		r.settings = models.DefaultSettings()
	}
	return true
}

// Unassign clears a repeater's context and any settings it owns.
func (s *State) Unassign(ref models.RepeaterRef) bool {
	r := s.repeater(ref)
	if r == nil || !r.Assigned() {
		return false
	}
	r.clear()
	return true
}

func (r *Repeater) clear() {
	r.AssignedContextID = ""
	r.Source = ""
	r.settings = nil
}

// Settings returns the settings of an attachment, or nil when the context
// is not attached at that scope. For a repeater scope it returns the
// settings the repeater owns.
func (s *State) Settings(scope models.Scope, contextID string) *models.Settings {
	if scope.Kind == models.ScopeRepeater {
		r := s.repeater(scope.Ref())
		if r == nil || r.AssignedContextID != contextID {
			return nil
		}
		return r.settings
	}

	list := s.attachments(scope)
	if list == nil {
		return nil
	}
	if a := find(*list, contextID); a != nil {
		return a.Settings
	}
	return nil
}

// UpdateSettings applies fn to the settings of an attachment and clamps the
// page size afterwards. It reports whether the attachment exists.
func (s *State) UpdateSettings(scope models.Scope, contextID string, fn func(*models.Settings)) bool {
	settings := s.Settings(scope, contextID)
	if settings == nil {
		return false
	}
	apply(settings, fn)
	return true
}

// UpdateRepeaterSettings applies fn to the settings that are in effect for
// a repeater. For a parent assignment the change is visible to every
// repeater sharing the attachment. It reports false when the repeater
// resolves to no stored settings.
func (s *State) UpdateRepeaterSettings(ref models.RepeaterRef, fn func(*models.Settings)) bool {
	key, ok := s.Resolve(ref)
	if !ok {
		return false
	}
	return s.UpdateSettings(key.Scope, key.ContextID, fn)
}

func apply(settings *models.Settings, fn func(*models.Settings)) {
	fn(settings)
	settings.PageSize = models.ClampPageSize(settings.PageSize)
	if settings.FilterRules == nil {
		settings.FilterRules = []models.FilterRule{}
	}
	if settings.SortRules == nil {
		settings.SortRules = []models.SortRule{}
	}
}

// Resolve returns the attachment whose settings apply to a repeater: its
// own for SourceAdd, otherwise the section attachment, then the page one.
func (s *State) Resolve(ref models.RepeaterRef) (Key, bool) {
	r := s.repeater(ref)
	if r == nil || !r.Assigned() {
		return Key{}, false
	}
	if r.Source == models.SourceAdd {
		return Key{Scope: ref.Scope(), ContextID: r.AssignedContextID}, true
	}
	return s.resolveParent(r)
}

func (s *State) resolveParent(r *Repeater) (Key, bool) {
	if sec := s.section(r.Ref.SectionID); sec != nil && find(sec.attachments, r.AssignedContextID) != nil {
		return Key{Scope: models.SectionScope(sec.id), ContextID: r.AssignedContextID}, true
	}
	if find(s.page, r.AssignedContextID) != nil {
		return Key{Scope: models.PageScope(), ContextID: r.AssignedContextID}, true
	}
	return Key{}, false
}

// ResolveEffectiveSettings returns the settings that apply to a repeater.
// Parent assignments return the enclosing attachment's settings object
// itself. A repeater assigned a context that is attached nowhere gets fresh
// default settings. It returns nil for an unknown or unassigned repeater.
func (s *State) ResolveEffectiveSettings(ref models.RepeaterRef) *models.Settings {
	r := s.repeater(ref)
	if r == nil || !r.Assigned() {
		return nil
	}
	if r.settings != nil {
		return r.settings
	}
	if key, ok := s.resolveParent(r); ok {
		return s.Settings(key.Scope, key.ContextID)
	}
	return models.DefaultSettings()
}
