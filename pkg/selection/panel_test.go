package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/scope"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

func newState(t *testing.T) *scope.State {
	t.Helper()
	st := scope.New()
	require.True(t, st.AddRepeater("section1", "rep"))
	require.True(t, st.AddRepeater("section2", "own"))
	st.Attach(models.PageScope(), "recipes")
	st.Attach(models.SectionScope("section1"), "team")
	return st
}

func TestPanelFor_Studio(t *testing.T) {
	st := newState(t)

	p := selection.PanelFor(selection.SelectPage(), st, selection.Studio)
	assert.Equal(t, selection.PanelPage, p.Kind)
	assert.True(t, p.DataTab)
	assert.Equal(t, []string{"recipes"}, p.Attached)

	p = selection.PanelFor(selection.SelectSection("section1"), st, selection.Studio)
	assert.Equal(t, selection.PanelSection, p.Kind)
	assert.Equal(t, models.SectionScope("section1"), p.Scope)
	assert.Equal(t, []string{"team"}, p.Attached)
	assert.Equal(t, []string{"recipes"}, p.Inherited)

	p = selection.PanelFor(selection.SelectContentTitle("section1"), st, selection.Studio)
	assert.Equal(t, selection.PanelContentTitle, p.Kind)
	assert.False(t, p.DataTab)

	p = selection.PanelFor(selection.SelectComponent("section1", "text"), st, selection.Studio)
	assert.Equal(t, selection.PanelComponent, p.Kind)

	p = selection.PanelFor(selection.SelectRepeater("section1", "rep"), st, selection.Studio)
	assert.Equal(t, selection.PanelRepeaterConnect, p.Kind)
	assert.True(t, p.CanInherit)
	assert.Nil(t, p.Settings)
	assert.Equal(t, []scope.Key{
		{Scope: models.SectionScope("section1"), ContextID: "team"},
		{Scope: models.PageScope(), ContextID: "recipes"},
	}, p.Options)

	ref := models.RepeaterRef{SectionID: "section1", ComponentID: "rep"}
	require.True(t, st.Assign(ref, "team", models.SourceParent))

	p = selection.PanelFor(selection.SelectRepeater("section1", "rep"), st, selection.Studio)
	assert.Equal(t, selection.PanelRepeaterData, p.Kind)
	assert.Equal(t, "team", p.ContextID)
	assert.Equal(t, models.SourceParent, p.Source)
	assert.Same(t, st.Settings(models.SectionScope("section1"), "team"), p.Settings)
}

func TestPanelFor_Classic(t *testing.T) {
	st := newState(t)

	p := selection.PanelFor(selection.SelectPage(), st, selection.Classic)
	assert.Equal(t, selection.PanelPage, p.Kind)
	assert.False(t, p.DataTab)
	assert.Nil(t, p.Attached)

	p = selection.PanelFor(selection.SelectSection("section1"), st, selection.Classic)
	assert.False(t, p.DataTab)
	assert.Nil(t, p.Inherited)

	p = selection.PanelFor(selection.SelectRepeater("section2", "own"), st, selection.Classic)
	assert.Equal(t, selection.PanelRepeaterConnect, p.Kind)
	assert.False(t, p.CanInherit)
	assert.Nil(t, p.Options)
}

func TestPanelFor_ItemsAndElements(t *testing.T) {
	st := newState(t)
	ref := models.RepeaterRef{SectionID: "section2", ComponentID: "own"}
	require.True(t, st.Assign(ref, "recipes", models.SourceAdd))

	p := selection.PanelFor(selection.SelectItem("section2", "own", "r3"), st, selection.Studio)
	assert.Equal(t, selection.PanelItem, p.Kind)
	assert.Equal(t, "r3", p.ItemID)
	assert.Equal(t, "recipes", p.ContextID)
	assert.Same(t, st.Settings(ref.Scope(), "recipes"), p.Settings)

	p = selection.PanelFor(selection.SelectElement("section2", "own", "r3", selection.ElementText), st, selection.Studio)
	assert.Equal(t, selection.PanelElement, p.Kind)
	assert.Equal(t, selection.ElementText, p.Element)

	p = selection.PanelFor(selection.SelectBlankSlot("section1", "rep", selection.ElementButton), st, selection.Studio)
	assert.Equal(t, selection.PanelBlankSlot, p.Kind)
	assert.Empty(t, p.ContextID)
}

func TestPanelFor_Missing(t *testing.T) {
	st := newState(t)

	for _, sel := range []selection.Selection{
		{},
		selection.SelectSection("nope"),
		selection.SelectComponent("nope", "c"),
		selection.SelectRepeater("section1", "gone"),
		selection.SelectItem("nope", "rep", "r1"),
	} {
		assert.Equal(t, selection.PanelNone, selection.PanelFor(sel, st, selection.Studio).Kind, sel.String())
	}
}

func TestParsePersonality(t *testing.T) {
	p, err := selection.ParsePersonality("classic")
	assert.NoError(t, err)
	assert.Equal(t, selection.Classic, p)

	p, err = selection.ParsePersonality("")
	assert.NoError(t, err)
	assert.Equal(t, selection.Studio, p)

	_, err = selection.ParsePersonality("retro")
	assert.Error(t, err)
}
