package main

import (
	"fmt"
	"strings"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// parseScope reads "page" or a section id.
func parseScope(s string) models.Scope {
	if s == "page" {
		return models.PageScope()
	}
	return models.SectionScope(s)
}

// parseAttach reads "<scope>=<context>".
func parseAttach(s string) (models.Scope, string, error) {
	scope, contextID, ok := strings.Cut(s, "=")
	if !ok || scope == "" || contextID == "" {
		return models.Scope{}, "", fmt.Errorf("invalid attachment %q (want scope=context)", s)
	}
	return parseScope(scope), contextID, nil
}

// parseFilter reads "<field>:<condition>[:<value>]". The value may contain
// colons.
func parseFilter(s string) (models.FilterRule, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return models.FilterRule{}, fmt.Errorf("invalid filter %q (want field:condition[:value])", s)
	}
	rule := models.FilterRule{Field: parts[0], Condition: models.ConditionKind(parts[1])}
	if len(parts) == 3 {
		rule.Value = parts[2]
	}
	return rule, nil
}

// parseSort reads "<field>[:asc|desc]". The direction defaults to asc.
func parseSort(s string) (models.SortRule, error) {
	field, dir, _ := strings.Cut(s, ":")
	if field == "" {
		return models.SortRule{}, fmt.Errorf("invalid sort %q (want field[:asc|desc])", s)
	}
	rule := models.SortRule{FieldID: field, Direction: models.Asc}
	switch strings.ToLower(dir) {
	case "", "asc":
	case "desc":
		rule.Direction = models.Desc
	default:
		return models.SortRule{}, fmt.Errorf("invalid sort direction %q", dir)
	}
	return rule, nil
}
