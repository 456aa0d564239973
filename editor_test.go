package repeater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/surrealdb/repeater.go/pkg/catalog"
	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/logger"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/scope"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

func newEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	e, err := New(catalog.Demo(), opts...)
	require.NoError(t, err)
	return e
}

func addRepeater(t *testing.T, e *Editor, sectionID string) models.RepeaterRef {
	t.Helper()
	id, err := e.AddRepeater(sectionID)
	require.NoError(t, err)
	return models.RepeaterRef{SectionID: sectionID, ComponentID: id}
}

func ids(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID()
	}
	return out
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, constants.ErrInvalidCatalog)

	e := newEditor(t)
	assert.Equal(t, []string{"section1", "section2", "section3"}, e.Sections())
	assert.Equal(t, selection.Studio, e.Personality())
	assert.Equal(t, selection.Selection{}, e.Selection())

	e = newEditor(t, WithSections("hero", "footer"), WithPersonality(selection.Classic))
	assert.Equal(t, []string{"hero", "footer"}, e.Sections())
	assert.Equal(t, selection.Classic, e.Personality())

	_, err = New(catalog.Demo(), WithSections())
	require.ErrorIs(t, err, constants.ErrUnknownSection)
}

func TestEditor_TeamScenario(t *testing.T) {
	e := newEditor(t)
	section1 := models.SectionScope("section1")

	require.NoError(t, e.AttachContext(section1, "team"))
	ref := addRepeater(t, e, "section1")
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceParent))

	settings, err := e.ResolveEffectiveSettings(ref)
	require.NoError(t, err)
	shared, err := e.Settings(section1, "team")
	require.NoError(t, err)
	assert.Same(t, shared, settings)
	assert.Equal(t, models.DefaultSettings(), settings)

	page, err := e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"t6", "t5", "t4", "t3"}, ids(page.Items))
	assert.Equal(t, 6, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, "Team 1", page.Label)

	page, err = e.Render(ref, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"t6", "t5", "t4", "t3", "t2", "t1"}, ids(page.Items))
	assert.False(t, page.HasMore)
}

func TestEditor_InstanceLabels(t *testing.T) {
	e := newEditor(t)
	page := models.PageScope()
	section1 := models.SectionScope("section1")

	require.NoError(t, e.AttachContext(page, "recipes"))
	require.NoError(t, e.AttachContext(section1, "recipes"))
	assert.Equal(t, map[scope.Key]string{
		{Scope: page, ContextID: "recipes"}:     "Recipes 1",
		{Scope: section1, ContextID: "recipes"}: "Recipes 2",
	}, e.InstanceLabels())

	require.NoError(t, e.DetachContext(page, "recipes"))
	require.NoError(t, e.DetachContext(section1, "recipes"))
	require.NoError(t, e.AttachContext(section1, "recipes"))
	assert.Equal(t, map[scope.Key]string{
		{Scope: section1, ContextID: "recipes"}: "Recipes 1",
	}, e.InstanceLabels())

	ref := addRepeater(t, e, "section2")
	require.NoError(t, e.AssignRepeaterContext(ref, "recipes", models.SourceAdd))
	assert.Equal(t, "Recipes 2", e.LabelFor(ref))
}

func TestEditor_PageSizeClamping(t *testing.T) {
	e := newEditor(t)
	page := models.PageScope()
	require.NoError(t, e.AttachContext(page, "recipes"))

	for in, want := range map[int]int{0: 1, -5: 1, 500: 100, 7: 7} {
		require.NoError(t, e.SetPageSize(page, "recipes", in))
		s, err := e.Settings(page, "recipes")
		require.NoError(t, err)
		assert.Equal(t, want, s.PageSize, "SetPageSize(%d)", in)
	}
}

func TestEditor_Render(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section2")

	page, err := e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, Page{}, page)

	require.NoError(t, e.AttachContext(ref.Scope(), "recipes"))
	rs := ref.Scope()

	page, err = e.Render(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"r10", "r9", "r8", "r7"}, ids(page.Items))
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 4, page.Visible)
	assert.True(t, page.HasMore)

	page, err = e.Render(ref, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, page.Visible)
	assert.False(t, page.HasMore)

	require.NoError(t, e.SetLoadMore(rs, "", false))
	page, err = e.Render(ref, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Visible)
	assert.False(t, page.HasMore)

	require.NoError(t, e.SetFilterRules(rs, "", []models.FilterRule{
		{Field: "course", Condition: models.ConditionEquals, Value: "breakfast"},
	}))
	require.NoError(t, e.SetSortRules(rs, "", nil))
	page, err = e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"r6", "r8", "r9", "r10"}, ids(page.Items))
	assert.Equal(t, 4, page.Total)

	require.NoError(t, e.SetSortRules(rs, "", []models.SortRule{{FieldID: "title", Direction: models.Asc}}))
	page, err = e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"r8", "r9", "r10", "r6"}, ids(page.Items))
}

func TestEditor_ParentSettingsAreShared(t *testing.T) {
	e := newEditor(t)
	require.NoError(t, e.AttachContext(models.PageScope(), "recipes"))
	a := addRepeater(t, e, "section1")
	b := addRepeater(t, e, "section3")
	require.NoError(t, e.AssignRepeaterContext(a, "recipes", models.SourceParent))
	require.NoError(t, e.AssignRepeaterContext(b, "recipes", models.SourceParent))

	require.NoError(t, e.SetPageSize(a.Scope(), "", 2))

	page, err := e.Render(b, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Visible)
	assert.Equal(t, "Recipes 1", page.Label)

	sa, _ := e.ResolveEffectiveSettings(a)
	sb, _ := e.ResolveEffectiveSettings(b)
	assert.Same(t, sa, sb)
}

func TestEditor_AddSettingsAreIndependent(t *testing.T) {
	e := newEditor(t)
	a := addRepeater(t, e, "section1")
	b := addRepeater(t, e, "section1")
	require.NoError(t, e.AssignRepeaterContext(a, "recipes", models.SourceAdd))
	require.NoError(t, e.AssignRepeaterContext(b, "recipes", models.SourceAdd))

	require.NoError(t, e.SetPageSize(a.Scope(), "recipes", 9))

	sa, _ := e.ResolveEffectiveSettings(a)
	sb, _ := e.ResolveEffectiveSettings(b)
	assert.Equal(t, 9, sa.PageSize)
	assert.Equal(t, 4, sb.PageSize)
	assert.Equal(t, "Recipes 1", e.LabelFor(a))
	assert.Equal(t, "Recipes 2", e.LabelFor(b))
}

func TestEditor_DetachUnassignsInheritingRepeaters(t *testing.T) {
	e := newEditor(t)
	section1 := models.SectionScope("section1")
	require.NoError(t, e.AttachContext(section1, "team"))
	ref := addRepeater(t, e, "section1")
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceParent))

	require.NoError(t, e.DetachContext(section1, "team"))

	settings, err := e.ResolveEffectiveSettings(ref)
	require.NoError(t, err)
	assert.Nil(t, settings)
	assert.Empty(t, e.LabelFor(ref))

	summary, err := e.SortSummary(ref)
	require.NoError(t, err)
	assert.Equal(t, "Default", summary)
}

func TestEditor_Errors(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section1")
	missing := models.RepeaterRef{SectionID: "section1", ComponentID: "nope"}

	assert.ErrorIs(t, e.AttachContext(models.PageScope(), "blog"), constants.ErrUnknownContext)
	assert.ErrorIs(t, e.AttachContext(models.SectionScope("section9"), "team"), constants.ErrUnknownSection)
	assert.ErrorIs(t, e.AttachContext(missing.Scope(), "team"), constants.ErrUnknownRepeater)
	assert.ErrorIs(t, e.AssignRepeaterContext(ref, "team", "borrow"), constants.ErrUnknownSource)
	assert.ErrorIs(t, e.UnassignRepeater(missing), constants.ErrUnknownRepeater)
	assert.ErrorIs(t, e.RemoveRepeater(missing), constants.ErrUnknownRepeater)
	assert.ErrorIs(t, e.SetPageSize(models.PageScope(), "team", 3), constants.ErrNotAttached)
	assert.ErrorIs(t, e.SetPageSize(ref.Scope(), "", 3), constants.ErrNotAttached)
	assert.ErrorIs(t, e.EditItem("team", "t99", "name", "X"), constants.ErrUnknownItem)

	_, err := e.AddRepeater("section9")
	assert.ErrorIs(t, err, constants.ErrUnknownSection)
	_, err = e.Render(missing, 1)
	assert.ErrorIs(t, err, constants.ErrUnknownRepeater)
	_, err = e.Items("blog")
	assert.ErrorIs(t, err, constants.ErrUnknownContext)

	// detaching what is not attached is fine
	assert.NoError(t, e.DetachContext(models.PageScope(), "team"))
}

func TestEditor_Classic(t *testing.T) {
	e := newEditor(t, WithPersonality(selection.Classic))
	ref := addRepeater(t, e, "section1")

	assert.ErrorIs(t, e.AttachContext(models.PageScope(), "team"), constants.ErrNotConnectable)
	assert.ErrorIs(t, e.AttachContext(models.SectionScope("section1"), "team"), constants.ErrNotConnectable)
	assert.ErrorIs(t, e.AssignRepeaterContext(ref, "team", models.SourceParent), constants.ErrNotConnectable)
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceAdd))

	opts, err := e.ParentOptions(ref)
	require.NoError(t, err)
	assert.Empty(t, opts)

	ids, err := e.ConnectableContexts(models.PageScope())
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = e.ConnectableContexts(ref.Scope())
	require.NoError(t, err)
	assert.Equal(t, []string{"recipes", "projects"}, ids)
}

func TestEditor_ConnectableAndParentOptions(t *testing.T) {
	e := newEditor(t)
	require.NoError(t, e.AttachContext(models.PageScope(), "recipes"))
	require.NoError(t, e.AttachContext(models.SectionScope("section2"), "projects"))
	ref := addRepeater(t, e, "section2")

	ids, err := e.ConnectableContexts(models.PageScope())
	require.NoError(t, err)
	assert.Equal(t, []string{"team", "projects"}, ids)

	opts, err := e.ParentOptions(ref)
	require.NoError(t, err)
	assert.Equal(t, []scope.Key{
		{Scope: models.SectionScope("section2"), ContextID: "projects"},
		{Scope: models.PageScope(), ContextID: "recipes"},
	}, opts)
}

func TestEditor_FilterRules(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := newEditor(t, WithLogger(logger.FromZap(zap.New(core))))
	page := models.PageScope()
	require.NoError(t, e.AttachContext(page, "recipes"))

	require.NoError(t, e.SetFilterRules(page, "recipes", []models.FilterRule{
		{Field: "course", Condition: models.ConditionContains, Value: "  "},
		{Field: "title", Condition: models.ConditionIsNotEmpty},
		{Field: "course", Condition: "sounds-like", Value: "brekfast"},
	}))

	s, err := e.Settings(page, "recipes")
	require.NoError(t, err)
	assert.Equal(t, []models.FilterRule{
		{Field: "title", Condition: models.ConditionIsNotEmpty},
		{Field: "course", Condition: "sounds-like", Value: "brekfast"},
	}, s.FilterRules)

	require.Equal(t, 1, logs.FilterMessage("unknown filter condition always matches").Len())
}

func TestEditor_EditItem(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section1")
	require.NoError(t, e.AssignRepeaterContext(ref, "recipes", models.SourceAdd))
	require.NoError(t, e.SetFilterRules(ref.Scope(), "", []models.FilterRule{
		{Field: "course", Condition: models.ConditionEquals, Value: "breakfast"},
	}))

	require.NoError(t, e.EditItem("recipes", "r1", "course", "Breakfast"))
	page, err := e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, "r10", page.Items[0].ID())

	assert.ErrorIs(t, e.EditItem("recipes", "r1", "id", "x"), constants.ErrUnknownItem)

	items, err := e.Items("recipes")
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", items[0]["course"])
	base, _ := e.Catalog().Context("recipes")
	assert.Equal(t, "dinner", base.Items[0]["course"])

	require.NoError(t, e.ClearItemEdits("recipes", "r1"))
	page, err = e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
}

func TestEditor_Selection(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section1")

	sel := e.Select(selection.SelectRepeater("section1", ref.ComponentID))
	assert.Equal(t, selection.Repeater, sel.Kind)
	assert.Equal(t, selection.PanelRepeaterConnect, e.Panel().Kind)

	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceAdd))
	assert.Equal(t, selection.PanelRepeaterData, e.Panel().Kind)

	sel = e.Select(selection.SelectItem("section1", ref.ComponentID, "t2"))
	assert.Equal(t, selection.RepeaterItem, sel.Kind)
	assert.Equal(t, selection.PanelItem, e.Panel().Kind)

	assert.Equal(t, selection.None, e.Select(selection.SelectItem("section1", ref.ComponentID, "r1")).Kind)
	assert.Equal(t, selection.None, e.Select(selection.SelectSection("section9")).Kind)
	assert.Equal(t, selection.Page, e.Select(selection.SelectSection("")).Kind)

	e.Select(selection.SelectElement("section1", ref.ComponentID, "t2", selection.ElementButton))
	require.NoError(t, e.RemoveRepeater(ref))
	assert.Equal(t, selection.Selection{}, e.Selection())
	assert.Equal(t, selection.PanelNone, e.Panel().Kind)
}

func TestEditor_SelectionFollowsContextChanges(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section1")
	require.NoError(t, e.AttachContext(models.SectionScope("section1"), "team"))
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceParent))

	sel := e.Select(selection.SelectItem("section1", ref.ComponentID, "t3"))
	require.Equal(t, selection.RepeaterItem, sel.Kind)
	require.Equal(t, selection.PanelItem, e.Panel().Kind)

	require.NoError(t, e.DetachContext(models.SectionScope("section1"), "team"))
	assert.Equal(t, selection.None, e.Selection().Kind)
	assert.Equal(t, selection.PanelNone, e.Panel().Kind)

	sel = e.Select(selection.SelectBlankSlot("section1", ref.ComponentID, selection.ElementButton))
	require.Equal(t, selection.BlankSlotElement, sel.Kind)
	require.NoError(t, e.AssignRepeaterContext(ref, "recipes", models.SourceAdd))
	assert.Equal(t, selection.None, e.Selection().Kind)
	assert.Equal(t, selection.None, e.Select(selection.SelectBlankSlot("section1", ref.ComponentID, selection.ElementButton)).Kind)

	sel = e.Select(selection.SelectItem("section1", ref.ComponentID, "r1"))
	require.Equal(t, selection.RepeaterItem, sel.Kind)
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceAdd))
	assert.Equal(t, selection.None, e.Selection().Kind)

	sel = e.Select(selection.SelectElement("section1", ref.ComponentID, "t2", selection.ElementButton))
	require.Equal(t, selection.RepeaterElement, sel.Kind)
	require.NoError(t, e.AttachContext(ref.Scope(), "team"))
	assert.Equal(t, selection.RepeaterElement, e.Selection().Kind)
	require.NoError(t, e.UnassignRepeater(ref))
	assert.Equal(t, selection.None, e.Selection().Kind)

	e.Select(selection.SelectRepeater("section1", ref.ComponentID))
	require.NoError(t, e.AssignRepeaterContext(ref, "team", models.SourceAdd))
	assert.Equal(t, selection.Repeater, e.Selection().Kind)
}

func TestEditor_SortSummaryAndPreview(t *testing.T) {
	e := newEditor(t)
	ref := addRepeater(t, e, "section3")

	sql, vars, err := e.QueryPreview(ref, 1)
	require.NoError(t, err)
	assert.Empty(t, sql)
	assert.Nil(t, vars)

	require.NoError(t, e.AssignRepeaterContext(ref, "projects", models.SourceAdd))
	require.NoError(t, e.SetSortRules(ref.Scope(), "", []models.SortRule{
		{FieldID: "value", Direction: models.Desc},
		{FieldID: "dateCreated", Direction: models.Asc},
	}))

	summary, err := e.SortSummary(ref)
	require.NoError(t, err)
	assert.Equal(t, "Budget (New → Old), Date created (Old → New)", summary)

	sql, vars, err = e.QueryPreview(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM projects ORDER BY value NUMERIC DESC,"+
		" (_createdDate ?? _updatedDate ?? id) COLLATE NUMERIC ASC LIMIT 4", sql)
	assert.Empty(t, vars)

	page, err := e.Render(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p4", "p1", "p3"}, ids(page.Items))

	fields, err := e.SortableFields("projects")
	require.NoError(t, err)
	assert.Equal(t, "dateCreated", fields[0].ID)
}
