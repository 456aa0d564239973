package rules

import (
	"strings"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// Condition pairs a condition kind with its display label.
type Condition struct {
	Kind  models.ConditionKind
	Label string
}

// Conditions returns the supported filter conditions in menu order.
func Conditions() []Condition {
	return []Condition{
		{Kind: models.ConditionContains, Label: "Contains"},
		{Kind: models.ConditionDoesNotContain, Label: "Does not contain"},
		{Kind: models.ConditionEquals, Label: "Is"},
		{Kind: models.ConditionStartsWith, Label: "Starts with"},
		{Kind: models.ConditionEndsWith, Label: "Ends with"},
		{Kind: models.ConditionIsEmpty, Label: "Is empty"},
		{Kind: models.ConditionIsNotEmpty, Label: "Is not empty"},
	}
}

// IsComplete reports whether a rule can be saved: conditions that compare
// against a value need a value that is not blank.
func IsComplete(rule models.FilterRule) bool {
	if rule.Field == "" {
		return false
	}
	if rule.Condition.NeedsValue() {
		return strings.TrimSpace(rule.Value) != ""
	}
	return true
}

// CompleteFilterRules returns the rules that pass IsComplete, in order.
func CompleteFilterRules(rules []models.FilterRule) []models.FilterRule {
	out := make([]models.FilterRule, 0, len(rules))
	for _, r := range rules {
		if IsComplete(r) {
			out = append(out, r)
		}
	}
	return out
}

// EvaluateFilter returns the records matching every rule, in their original
// order. With no rules the input slice is returned as is.
func EvaluateFilter(records []models.Record, rules []models.FilterRule) []models.Record {
	if len(rules) == 0 {
		return records
	}

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, rules) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r models.Record, rules []models.FilterRule) bool {
	for _, rule := range rules {
		if !Matches(r, rule) {
			return false
		}
	}
	return true
}

// Matches evaluates a single rule against a record.
//
// Comparisons are case-insensitive. A comparing condition whose value is
// blank never matches, and an unknown condition always does.
func Matches(r models.Record, rule models.FilterRule) bool {
	field := filterValue(r, rule.Field)
	value := strings.TrimSpace(rule.Value)

	switch rule.Condition {
	case models.ConditionIsEmpty:
		return strings.TrimSpace(field) == ""
	case models.ConditionIsNotEmpty:
		return strings.TrimSpace(field) != ""
	case models.ConditionContains, models.ConditionDoesNotContain, models.ConditionEquals,
		models.ConditionStartsWith, models.ConditionEndsWith:
		if value == "" {
			return false
		}
	default:
		return true
	}

	field = strings.ToLower(field)
	value = strings.ToLower(value)

	switch rule.Condition {
	case models.ConditionContains:
		return strings.Contains(field, value)
	case models.ConditionDoesNotContain:
		return !strings.Contains(field, value)
	case models.ConditionEquals:
		return field == value
	case models.ConditionStartsWith:
		return strings.HasPrefix(field, value)
	case models.ConditionEndsWith:
		return strings.HasSuffix(field, value)
	}
	return true
}

// filterValue resolves the string a filter rule compares against.
func filterValue(r models.Record, field string) string {
	switch field {
	case "title":
		return stringify(lookupText(r, "title", "name"))
	default:
		v, _ := lookup(r, field)
		return stringify(v)
	}
}
