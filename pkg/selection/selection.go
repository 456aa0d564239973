// Package selection models what is selected on the canvas and which
// settings panel applies to it.
package selection

import (
	"fmt"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// Kind is the kind of entity a selection points at.
type Kind int

const (
	None Kind = iota
	Page
	Section
	ContentTitle
	Component
	Repeater
	RepeaterItem
	RepeaterElement
	BlankSlotElement
)

var kindNames = map[Kind]string{
	None:             "none",
	Page:             "page",
	Section:          "section",
	ContentTitle:     "contentTitle",
	Component:        "component",
	Repeater:         "repeater",
	RepeaterItem:     "repeaterItem",
	RepeaterElement:  "repeaterElement",
	BlankSlotElement: "blankSlotElement",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Element is a sub-element of a repeater item.
type Element string

const (
	ElementImage  Element = "image"
	ElementText   Element = "text"
	ElementButton Element = "button"
)

// Valid reports whether e is a known element.
func (e Element) Valid() bool {
	return e == ElementImage || e == ElementText || e == ElementButton
}

// Selection is the current canvas selection. Fields that do not apply to
// Kind are empty.
type Selection struct {
	Kind        Kind
	SectionID   string
	ComponentID models.ComponentID
	ItemID      string
	Element     Element
}

func (s Selection) String() string {
	switch s.Kind {
	case None, Page:
		return s.Kind.String()
	case Section, ContentTitle:
		return fmt.Sprintf("%s(%s)", s.Kind, s.SectionID)
	case Component, Repeater:
		return fmt.Sprintf("%s(%s/%s)", s.Kind, s.SectionID, s.ComponentID)
	case RepeaterItem:
		return fmt.Sprintf("%s(%s/%s/%s)", s.Kind, s.SectionID, s.ComponentID, s.ItemID)
	default:
		return fmt.Sprintf("%s(%s/%s/%s:%s)", s.Kind, s.SectionID, s.ComponentID, s.ItemID, s.Element)
	}
}

// Ref returns the repeater a selection is inside of.
func (s Selection) Ref() models.RepeaterRef {
	return models.RepeaterRef{SectionID: s.SectionID, ComponentID: s.ComponentID}
}

// Targets of a click.

// SelectPage targets the page.
func SelectPage() Selection { return Selection{Kind: Page} }

// SelectSection targets a section.
func SelectSection(sectionID string) Selection {
	return Selection{Kind: Section, SectionID: sectionID}
}

// SelectContentTitle targets the content title of a section.
func SelectContentTitle(sectionID string) Selection {
	return Selection{Kind: ContentTitle, SectionID: sectionID}
}

// SelectComponent targets a component that is not a repeater.
func SelectComponent(sectionID string, componentID models.ComponentID) Selection {
	return Selection{Kind: Component, SectionID: sectionID, ComponentID: componentID}
}

// SelectRepeater targets a repeater.
func SelectRepeater(sectionID string, componentID models.ComponentID) Selection {
	return Selection{Kind: Repeater, SectionID: sectionID, ComponentID: componentID}
}

// SelectItem targets one item of a repeater.
func SelectItem(sectionID string, componentID models.ComponentID, itemID string) Selection {
	return Selection{Kind: RepeaterItem, SectionID: sectionID, ComponentID: componentID, ItemID: itemID}
}

// SelectElement targets an element inside a repeater item.
func SelectElement(sectionID string, componentID models.ComponentID, itemID string, element Element) Selection {
	return Selection{Kind: RepeaterElement, SectionID: sectionID, ComponentID: componentID, ItemID: itemID, Element: element}
}

// SelectBlankSlot targets an element of the placeholder item an unassigned
// repeater shows.
func SelectBlankSlot(sectionID string, componentID models.ComponentID, element Element) Selection {
	return Selection{Kind: BlankSlotElement, SectionID: sectionID, ComponentID: componentID, Element: element}
}

// Click returns the selection that results from clicking target. Every
// target maps to a selection: a target missing the ids its kind needs
// degrades to the nearest enclosing entity that is fully identified, and
// fields that do not apply to the resulting kind are cleared.
func Click(target Selection) Selection {
	k := target.Kind

	if k == RepeaterElement && !target.Element.Valid() {
		k = RepeaterItem
	}
	if k == BlankSlotElement && !target.Element.Valid() {
		k = Repeater
	}
	if (k == RepeaterItem || k == RepeaterElement) && target.ItemID == "" {
		k = Repeater
	}
	if (k == Component || k == Repeater || k == BlankSlotElement) && target.ComponentID == "" {
		k = Section
	}
	if (k == Section || k == ContentTitle) && target.SectionID == "" {
		k = Page
	}

	switch k {
	case Page:
		return SelectPage()
	case Section:
		return SelectSection(target.SectionID)
	case ContentTitle:
		return SelectContentTitle(target.SectionID)
	case Component:
		return SelectComponent(target.SectionID, target.ComponentID)
	case Repeater:
		return SelectRepeater(target.SectionID, target.ComponentID)
	case RepeaterItem:
		return SelectItem(target.SectionID, target.ComponentID, target.ItemID)
	case RepeaterElement:
		return SelectElement(target.SectionID, target.ComponentID, target.ItemID, target.Element)
	case BlankSlotElement:
		return SelectBlankSlot(target.SectionID, target.ComponentID, target.Element)
	}
	return Selection{}
}

// Deleted identifies a removed entity. A zero ComponentID means the whole
// section; a non-zero ItemID means a single item of a repeater.
type Deleted struct {
	SectionID   string
	ComponentID models.ComponentID
	ItemID      string
}

// Forget returns None when sel refers to the deleted entity or to anything
// inside it, and sel otherwise.
func Forget(sel Selection, d Deleted) Selection {
	if sel.Kind == None || sel.Kind == Page || sel.SectionID != d.SectionID {
		return sel
	}
	if d.ComponentID == "" {
		return Selection{}
	}
	if sel.ComponentID != d.ComponentID {
		return sel
	}
	if d.ItemID == "" {
		return Selection{}
	}
	if sel.ItemID == d.ItemID {
		return Selection{}
	}
	return sel
}
