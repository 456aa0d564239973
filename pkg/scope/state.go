package scope

import (
	"slices"

	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
)

// Attachment pairs a context with the settings of one scope.
type Attachment struct {
	ContextID string
	Settings  *models.Settings
}

// Key names one attachment: the scope it lives at and its context.
type Key struct {
	Scope     models.Scope
	ContextID string
}

// Repeater is the context assignment of one repeater component.
type Repeater struct {
	Ref               models.RepeaterRef
	AssignedContextID string
	Source            models.AssignSource

	// set only for SourceAdd
	settings *models.Settings
}

// Assigned reports whether the repeater has a context.
func (r *Repeater) Assigned() bool {
	return r.AssignedContextID != ""
}

type section struct {
	id          string
	attachments []*Attachment
	repeaters   []*Repeater
}

// State is the attachment state of a whole document. It is owned by a single
// caller and is not safe for concurrent use.
type State struct {
	page     []*Attachment
	sections []*section
}

// New returns an empty state with the given sections, in document order.
// Without ids the default three sections are used.
func New(sectionIDs ...string) *State {
	if len(sectionIDs) == 0 {
		sectionIDs = constants.DefaultSections
	}

	s := &State{}
	for _, id := range sectionIDs {
		if s.section(id) != nil {
			continue
		}
		s.sections = append(s.sections, &section{id: id})
	}
	return s
}

// Sections returns the section ids in document order.
func (s *State) Sections() []string {
	out := make([]string, len(s.sections))
	for i, sec := range s.sections {
		out[i] = sec.id
	}
	return out
}

// HasSection reports whether id names a section.
func (s *State) HasSection(id string) bool {
	return s.section(id) != nil
}

func (s *State) section(id string) *section {
	for _, sec := range s.sections {
		if sec.id == id {
			return sec
		}
	}
	return nil
}

// attachments returns the attachment list of a page or section scope.
func (s *State) attachments(scope models.Scope) *[]*Attachment {
	switch scope.Kind {
	case models.ScopePage:
		return &s.page
	case models.ScopeSection:
		if sec := s.section(scope.SectionID); sec != nil {
			return &sec.attachments
		}
	}
	return nil
}

func find(list []*Attachment, contextID string) *Attachment {
	for _, a := range list {
		if a.ContextID == contextID {
			return a
		}
	}
	return nil
}

// AddRepeater registers a repeater component in a section. It returns false
// when the section is unknown or the component already exists.
func (s *State) AddRepeater(sectionID string, componentID models.ComponentID) bool {
	sec := s.section(sectionID)
	if sec == nil || s.repeater(models.RepeaterRef{SectionID: sectionID, ComponentID: componentID}) != nil {
		return false
	}
	sec.repeaters = append(sec.repeaters, &Repeater{
		Ref: models.RepeaterRef{SectionID: sectionID, ComponentID: componentID},
	})
	return true
}

// RemoveRepeater deletes a repeater together with any settings it owns.
func (s *State) RemoveRepeater(ref models.RepeaterRef) bool {
	sec := s.section(ref.SectionID)
	if sec == nil {
		return false
	}
	i := slices.IndexFunc(sec.repeaters, func(r *Repeater) bool { return r.Ref == ref })
	if i < 0 {
		return false
	}
	sec.repeaters = slices.Delete(sec.repeaters, i, i+1)
	return true
}

func (s *State) repeater(ref models.RepeaterRef) *Repeater {
	sec := s.section(ref.SectionID)
	if sec == nil {
		return nil
	}
	for _, r := range sec.repeaters {
		if r.Ref == ref {
			return r
		}
	}
	return nil
}

// Repeater returns a copy of a repeater's assignment.
func (s *State) Repeater(ref models.RepeaterRef) (Repeater, bool) {
	r := s.repeater(ref)
	if r == nil {
		return Repeater{}, false
	}
	return *r, true
}

// Repeaters returns copies of the repeaters of a section in insertion order.
func (s *State) Repeaters(sectionID string) []Repeater {
	sec := s.section(sectionID)
	if sec == nil {
		return nil
	}
	out := make([]Repeater, len(sec.repeaters))
	for i, r := range sec.repeaters {
		out[i] = *r
	}
	return out
}
