package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ScopeKind is one of the three nesting levels a context can be attached at.
type ScopeKind int

const (
	ScopePage ScopeKind = iota
	ScopeSection
	ScopeRepeater
)

func (k ScopeKind) String() string {
	switch k {
	case ScopePage:
		return "page"
	case ScopeSection:
		return "section"
	case ScopeRepeater:
		return "repeater"
	}
	return fmt.Sprintf("ScopeKind(%d)", int(k))
}

// ComponentID identifies a component placed in a section.
type ComponentID string

// NewComponentID returns a fresh random component id.
func NewComponentID() ComponentID {
	return ComponentID(uuid.NewString())
}

// Scope is a comparable value naming a page, a section, or a repeater inside
// a section.
type Scope struct {
	Kind        ScopeKind
	SectionID   string
	ComponentID ComponentID
}

// PageScope returns the page scope.
func PageScope() Scope {
	return Scope{Kind: ScopePage}
}

// SectionScope returns the scope of the given section.
func SectionScope(sectionID string) Scope {
	return Scope{Kind: ScopeSection, SectionID: sectionID}
}

// RepeaterScope returns the scope of a repeater component.
func RepeaterScope(sectionID string, componentID ComponentID) Scope {
	return Scope{Kind: ScopeRepeater, SectionID: sectionID, ComponentID: componentID}
}

// Ref returns the repeater reference of a repeater scope.
func (s Scope) Ref() RepeaterRef {
	return RepeaterRef{SectionID: s.SectionID, ComponentID: s.ComponentID}
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopePage:
		return "page"
	case ScopeSection:
		return "section:" + s.SectionID
	case ScopeRepeater:
		return fmt.Sprintf("repeater:%s/%s", s.SectionID, s.ComponentID)
	}
	return s.Kind.String()
}

// RepeaterRef identifies a repeater by its section and component id.
type RepeaterRef struct {
	SectionID   string
	ComponentID ComponentID
}

// Scope returns the repeater scope for r.
func (r RepeaterRef) Scope() Scope {
	return RepeaterScope(r.SectionID, r.ComponentID)
}

func (r RepeaterRef) String() string {
	return r.Scope().String()
}

// AssignSource records where a repeater's context assignment came from.
type AssignSource string

const (
	// SourceParent shares the settings of the nearest enclosing attachment.
	SourceParent AssignSource = "parent"
	// SourceAdd owns a settings record scoped to the repeater.
	SourceAdd AssignSource = "add"
)

// Valid reports whether s is a known source.
func (s AssignSource) Valid() bool {
	return s == SourceParent || s == SourceAdd
}
