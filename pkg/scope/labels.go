package scope

import (
	"strconv"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// InstanceLabels numbers every attachment of each context across the whole
// document and returns "<label> <n>" per attachment. Ordinals are counted
// per context in a fixed order: page attachments, then the attachments of
// each section in section order, then repeater-owned assignments in section
// order and insertion order. labelOf maps a context id to its display label.
//
// The result depends only on the current state, so removing and re-adding
// attachments never leaves gaps.
func (s *State) InstanceLabels(labelOf func(contextID string) string) map[Key]string {
	out := make(map[Key]string)
	counts := make(map[string]int)

	number := func(key Key) {
		counts[key.ContextID]++
		out[key] = labelOf(key.ContextID) + " " + strconv.Itoa(counts[key.ContextID])
	}

	for _, a := range s.page {
		number(Key{Scope: models.PageScope(), ContextID: a.ContextID})
	}
	for _, sec := range s.sections {
		for _, a := range sec.attachments {
			number(Key{Scope: models.SectionScope(sec.id), ContextID: a.ContextID})
		}
	}
	for _, sec := range s.sections {
		for _, r := range sec.repeaters {
			if r.Source == models.SourceAdd && r.Assigned() {
				number(Key{Scope: r.Ref.Scope(), ContextID: r.AssignedContextID})
			}
		}
	}
	return out
}

// LabelFor returns the instance label a repeater displays: the label of the
// attachment its settings resolve to. It returns "" when the repeater
// resolves to no attachment.
func (s *State) LabelFor(ref models.RepeaterRef, labelOf func(contextID string) string) string {
	key, ok := s.Resolve(ref)
	if !ok {
		return ""
	}
	return s.InstanceLabels(labelOf)[key]
}
