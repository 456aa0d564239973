package rules

import (
	"strings"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// DefaultSummary is the summary of an empty sort rule list.
const DefaultSummary = "Default"

// DirectionLabel renders a sort direction for display.
func DirectionLabel(d models.Direction) string {
	if d == models.Desc {
		return "New → Old"
	}
	return "Old → New"
}

// SummarizeSort describes rules as text, e.g.
// "Date created (New → Old), Title (Old → New)". Field ids missing from
// fields are shown as is.
func SummarizeSort(rules []models.SortRule, fields []models.FieldDef) string {
	if len(rules) == 0 {
		return DefaultSummary
	}

	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		parts = append(parts, fieldLabel(rule.FieldID, fields)+" ("+DirectionLabel(rule.Direction)+")")
	}
	return strings.Join(parts, ", ")
}

func fieldLabel(id string, fields []models.FieldDef) string {
	for _, f := range fields {
		if f.ID == id {
			return f.Label
		}
	}
	return id
}

// SortableFields returns the fields offered in the sort menu: a "Date
// created" entry first, then every field whose type can be ordered.
func SortableFields(fields []models.FieldDef) []models.FieldDef {
	out := []models.FieldDef{{ID: "dateCreated", Label: "Date created", Type: models.FieldDate}}
	for _, f := range fields {
		if f.ID == "dateCreated" {
			out[0] = f
			continue
		}
		switch f.Type {
		case models.FieldImage, models.FieldURL, models.FieldRichText:
			continue
		}
		out = append(out, f)
	}
	return out
}
