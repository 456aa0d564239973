package selection

import (
	"fmt"

	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/scope"
)

// Personality is an editor flavour. It changes where contexts can be
// connected, not how they resolve.
type Personality int

const (
	// Studio connects contexts at page, section and repeater scope.
	Studio Personality = iota
	// Classic connects contexts on repeaters only, and repeaters cannot
	// inherit.
	Classic
)

func (p Personality) String() string {
	switch p {
	case Studio:
		return "studio"
	case Classic:
		return "classic"
	}
	return fmt.Sprintf("Personality(%d)", int(p))
}

// ParsePersonality parses "studio" or "classic".
func ParsePersonality(s string) (Personality, error) {
	switch s {
	case "studio", "":
		return Studio, nil
	case "classic":
		return Classic, nil
	}
	return Studio, fmt.Errorf("unknown personality %q", s)
}

// PanelKind names a settings panel.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelPage
	PanelSection
	PanelContentTitle
	PanelComponent
	// PanelRepeaterConnect prompts to pick a context for an unassigned
	// repeater.
	PanelRepeaterConnect
	// PanelRepeaterData edits the pagination, filter and sort settings of an
	// assigned repeater.
	PanelRepeaterData
	PanelItem
	PanelElement
	PanelBlankSlot
)

var panelNames = map[PanelKind]string{
	PanelNone:            "none",
	PanelPage:            "page",
	PanelSection:         "section",
	PanelContentTitle:    "contentTitle",
	PanelComponent:       "component",
	PanelRepeaterConnect: "repeaterConnect",
	PanelRepeaterData:    "repeaterData",
	PanelItem:            "item",
	PanelElement:         "element",
	PanelBlankSlot:       "blankSlot",
}

func (k PanelKind) String() string {
	if s, ok := panelNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PanelKind(%d)", int(k))
}

// Panel describes the settings panel for a selection.
type Panel struct {
	Kind PanelKind
	// Scope is the scope the panel edits.
	Scope models.Scope

	// DataTab is set when contexts can be connected at Scope.
	DataTab bool
	// Attached lists the contexts connected at Scope.
	Attached []string
	// Inherited lists page contexts visible inside a section.
	Inherited []string

	// Repeater panels only.
	ContextID  string
	Source     models.AssignSource
	Settings   *models.Settings
	CanInherit bool
	Options    []scope.Key

	ItemID  string
	Element Element
}

// PanelFor returns the panel that applies to sel. It is a pure function of
// the selection, the attachment state and the personality. A selection that
// refers to a section or repeater missing from st yields PanelNone.
func PanelFor(sel Selection, st *scope.State, p Personality) Panel {
	switch sel.Kind {
	case Page:
		panel := Panel{Kind: PanelPage, Scope: models.PageScope()}
		if p == Studio {
			panel.DataTab = true
			panel.Attached = st.AttachedAt(panel.Scope)
		}
		return panel

	case Section, ContentTitle:
		if !st.HasSection(sel.SectionID) {
			return Panel{}
		}
		panel := Panel{Kind: PanelSection, Scope: models.SectionScope(sel.SectionID)}
		if sel.Kind == ContentTitle {
			panel.Kind = PanelContentTitle
			return panel
		}
		if p == Studio {
			panel.DataTab = true
			panel.Attached = st.AttachedAt(panel.Scope)
			panel.Inherited = st.InheritedAt(sel.SectionID)
		}
		return panel

	case Component:
		if !st.HasSection(sel.SectionID) {
			return Panel{}
		}
		return Panel{Kind: PanelComponent, Scope: models.SectionScope(sel.SectionID)}

	case Repeater, RepeaterItem, RepeaterElement, BlankSlotElement:
		return repeaterPanel(sel, st, p)
	}
	return Panel{}
}

func repeaterPanel(sel Selection, st *scope.State, p Personality) Panel {
	ref := sel.Ref()
	r, ok := st.Repeater(ref)
	if !ok {
		return Panel{}
	}

	panel := Panel{
		Scope:      ref.Scope(),
		ContextID:  r.AssignedContextID,
		Source:     r.Source,
		CanInherit: p == Studio,
		ItemID:     sel.ItemID,
		Element:    sel.Element,
	}
	if panel.CanInherit {
		panel.Options = st.ParentOptions(ref)
	}

	switch sel.Kind {
	case RepeaterItem:
		panel.Kind = PanelItem
	case RepeaterElement:
		panel.Kind = PanelElement
	case BlankSlotElement:
		panel.Kind = PanelBlankSlot
	default:
		panel.Kind = PanelRepeaterData
		panel.DataTab = true
		if !r.Assigned() {
			panel.Kind = PanelRepeaterConnect
		}
	}

	if r.Assigned() {
		panel.Settings = st.ResolveEffectiveSettings(ref)
	}
	return panel
}
