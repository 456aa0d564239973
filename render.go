package repeater

import (
	"fmt"
	"slices"

	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/preview"
	"github.com/surrealdb/repeater.go/pkg/rules"
)

// Page is what a repeater shows after filtering, sorting and pagination.
type Page struct {
	// ContextID is empty for an unassigned repeater, which shows a blank
	// placeholder item.
	ContextID string
	Label     string
	Items     []models.Record
	// Total counts the records that pass the filter.
	Total int
	// Visible is len(Items).
	Visible int
	// HasMore is set when a load-more button would reveal more records.
	HasMore bool
}

// Items returns the records of a context with session edits applied.
func (e *Editor) Items(contextID string) ([]models.Record, error) {
	if err := e.checkContext(contextID); err != nil {
		return nil, err
	}
	return e.overrides.Apply(contextID, e.catalog.Items(contextID)), nil
}

// EditItem overrides one field of a record for the rest of the session. The
// catalog is never modified.
func (e *Editor) EditItem(contextID, recordID, field string, value any) error {
	if err := e.checkItem(contextID, recordID); err != nil {
		return e.reject("edit item", err, "context", contextID, "item", recordID)
	}
	if field == "" || field == "id" {
		return e.reject("edit item", fmt.Errorf("%w: field %q cannot be edited", constants.ErrUnknownItem, field),
			"context", contextID, "item", recordID)
	}
	e.overrides.Set(contextID, recordID, field, value)
	e.logger.Debug("item edited", "context", contextID, "item", recordID, "field", field)
	return nil
}

// ClearItemEdits drops every edit of a record.
func (e *Editor) ClearItemEdits(contextID, recordID string) error {
	if err := e.checkItem(contextID, recordID); err != nil {
		return e.reject("clear item edits", err, "context", contextID, "item", recordID)
	}
	e.overrides.Clear(contextID, recordID)
	return nil
}

func (e *Editor) checkItem(contextID, recordID string) error {
	if err := e.checkContext(contextID); err != nil {
		return err
	}
	ctx, _ := e.catalog.Context(contextID)
	if !slices.ContainsFunc(ctx.Items, func(r models.Record) bool { return r.ID() == recordID }) {
		return fmt.Errorf("%w: %q in %q", constants.ErrUnknownItem, recordID, contextID)
	}
	return nil
}

// Render returns what a repeater shows after pages presses of load more
// (pages < 1 counts as 1). The list is the context's records filtered and
// then sorted by the effective settings, cut to pageSize × pages records,
// or to a single page when load more is off.
func (e *Editor) Render(ref models.RepeaterRef, pages int) (Page, error) {
	if err := e.checkRepeater(ref); err != nil {
		return Page{}, err
	}
	r, _ := e.state.Repeater(ref)
	if !r.Assigned() {
		return Page{}, nil
	}

	settings := e.state.ResolveEffectiveSettings(ref)
	items, err := e.Items(r.AssignedContextID)
	if err != nil {
		return Page{}, err
	}

	list := rules.EvaluateSort(rules.EvaluateFilter(items, settings.FilterRules), settings.SortRules)

	if pages < 1 || !settings.LoadMoreEnabled {
		pages = 1
	}
	limit := min(models.ClampPageSize(settings.PageSize)*pages, len(list))

	return Page{
		ContextID: r.AssignedContextID,
		Label:     e.LabelFor(ref),
		Items:     list[:limit],
		Total:     len(list),
		Visible:   limit,
		HasMore:   settings.LoadMoreEnabled && limit < len(list),
	}, nil
}

// SortSummary describes the sort order a repeater uses, e.g.
// "Date created (New → Old)". An unassigned repeater reports "Default".
func (e *Editor) SortSummary(ref models.RepeaterRef) (string, error) {
	if err := e.checkRepeater(ref); err != nil {
		return "", err
	}
	settings := e.state.ResolveEffectiveSettings(ref)
	if settings == nil {
		return rules.DefaultSummary, nil
	}
	r, _ := e.state.Repeater(ref)
	return rules.SummarizeSort(settings.SortRules, e.catalog.FieldsFor(r.AssignedContextID)), nil
}

// SortableFields returns the sort menu entries for a context.
func (e *Editor) SortableFields(contextID string) ([]models.FieldDef, error) {
	if err := e.checkContext(contextID); err != nil {
		return nil, err
	}
	return rules.SortableFields(e.catalog.FieldsFor(contextID)), nil
}

// QueryPreview returns the SurrealQL statement a backend would run to fill
// a repeater after pages presses of load more, with its parameters. An
// unassigned repeater has no query.
func (e *Editor) QueryPreview(ref models.RepeaterRef, pages int) (string, map[string]any, error) {
	if err := e.checkRepeater(ref); err != nil {
		return "", nil, err
	}
	r, _ := e.state.Repeater(ref)
	if !r.Assigned() {
		return "", nil, nil
	}
	sql, vars := preview.SurrealQL(r.AssignedContextID, e.state.ResolveEffectiveSettings(ref), pages)
	return sql, vars, nil
}
