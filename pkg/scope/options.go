package scope

import (
	"slices"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// AttachedAt returns the context ids attached at a scope in attachment
// order. For a repeater scope it returns the context the repeater owns.
func (s *State) AttachedAt(scope models.Scope) []string {
	if scope.Kind == models.ScopeRepeater {
		r := s.repeater(scope.Ref())
		if r == nil || r.Source != models.SourceAdd || !r.Assigned() {
			return nil
		}
		return []string{r.AssignedContextID}
	}

	list := s.attachments(scope)
	if list == nil {
		return nil
	}
	out := make([]string, len(*list))
	for i, a := range *list {
		out[i] = a.ContextID
	}
	return out
}

// InheritedAt returns the page attachments visible inside a section that the
// section does not attach itself.
func (s *State) InheritedAt(sectionID string) []string {
	sec := s.section(sectionID)
	if sec == nil {
		return nil
	}
	var out []string
	for _, a := range s.page {
		if find(sec.attachments, a.ContextID) == nil {
			out = append(out, a.ContextID)
		}
	}
	return out
}

// ParentOptions lists the attachments a repeater can inherit from: its
// section's attachments first, then page attachments the section does not
// shadow.
func (s *State) ParentOptions(ref models.RepeaterRef) []Key {
	sec := s.section(ref.SectionID)
	if sec == nil {
		return nil
	}
	var out []Key
	for _, a := range sec.attachments {
		out = append(out, Key{Scope: models.SectionScope(sec.id), ContextID: a.ContextID})
	}
	for _, id := range s.InheritedAt(sec.id) {
		out = append(out, Key{Scope: models.PageScope(), ContextID: id})
	}
	return out
}

// Connectable returns the ids among catalogIDs that can still be attached at
// a scope, keeping catalog order.
func (s *State) Connectable(scope models.Scope, catalogIDs []string) []string {
	if scope.Kind != models.ScopeRepeater && s.attachments(scope) == nil {
		return nil
	}
	if scope.Kind == models.ScopeRepeater && s.repeater(scope.Ref()) == nil {
		return nil
	}

	attached := s.AttachedAt(scope)
	out := make([]string, 0, len(catalogIDs))
	for _, id := range catalogIDs {
		if !slices.Contains(attached, id) {
			out = append(out, id)
		}
	}
	return out
}
