// Package preview renders the SurrealQL statement a backend would run for a
// repeater's resolved settings. The statement is shown to the user and is
// never executed.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/rules"
)

// Query is a SELECT statement over one context.
type Query struct {
	from     string
	where    []string
	orderBy  []orderByClause
	limitVal *int
	startVal *int
	vars     map[string]any
}

type orderByClause struct {
	expr    string
	desc    bool
	collate bool
	numeric bool
}

// Select starts a query over table.
func Select(table string) *Query {
	return &Query{from: escapeIdent(table), vars: make(map[string]any)}
}

// Filter adds one WHERE condition per rule. Incomplete rules add a condition
// that is always false, and rules with an unknown condition add nothing.
func (q *Query) Filter(filters ...models.FilterRule) *Query {
	for _, rule := range filters {
		if cond, ok := q.condition(rule); ok {
			q.where = append(q.where, cond)
		}
	}
	return q
}

// Sort adds one ORDER BY clause per rule. Numeric fields order by value and
// every other field by natural string order.
func (q *Query) Sort(sorts ...models.SortRule) *Query {
	for _, rule := range sorts {
		if rule.FieldID == "" {
			continue
		}
		numeric := rules.IsNumericField(rule.FieldID)
		q.orderBy = append(q.orderBy, orderByClause{
			expr:    sortExpr(rule.FieldID),
			desc:    rule.Direction == models.Desc,
			collate: !numeric,
			numeric: true,
		})
	}
	return q
}

// Limit sets the LIMIT clause.
func (q *Query) Limit(limit int) *Query {
	q.limitVal = &limit
	return q
}

// Start sets the START clause.
func (q *Query) Start(start int) *Query {
	q.startVal = &start
	return q
}

func (q *Query) condition(rule models.FilterRule) (string, bool) {
	switch rule.Condition {
	case models.ConditionContains, models.ConditionDoesNotContain, models.ConditionEquals,
		models.ConditionStartsWith, models.ConditionEndsWith,
		models.ConditionIsEmpty, models.ConditionIsNotEmpty:
	default:
		return "", false
	}
	if rule.Condition.NeedsValue() && strings.TrimSpace(rule.Value) == "" {
		return "false", true
	}
	// Without a field every record reads as blank, so the rule is constant.
	if rule.Field == "" {
		return strconv.FormatBool(rules.Matches(models.Record{}, rule)), true
	}

	field := filterExpr(rule.Field)
	lowered := fmt.Sprintf("string::lowercase(<string> %s)", field)

	switch rule.Condition {
	case models.ConditionIsEmpty:
		return fmt.Sprintf("string::trim(<string> (%s ?? '')) = ''", field), true
	case models.ConditionIsNotEmpty:
		return fmt.Sprintf("string::trim(<string> (%s ?? '')) != ''", field), true
	}

	param := "$" + q.addParam(rule.Field, strings.ToLower(strings.TrimSpace(rule.Value)))
	switch rule.Condition {
	case models.ConditionContains:
		return fmt.Sprintf("string::contains(%s, %s)", lowered, param), true
	case models.ConditionDoesNotContain:
		return fmt.Sprintf("!string::contains(%s, %s)", lowered, param), true
	case models.ConditionEquals:
		return fmt.Sprintf("%s = %s", lowered, param), true
	case models.ConditionStartsWith:
		return fmt.Sprintf("string::starts_with(%s, %s)", lowered, param), true
	default:
		return fmt.Sprintf("string::ends_with(%s, %s)", lowered, param), true
	}
}

// addParam stores value under a fresh name derived from field.
func (q *Query) addParam(field string, value any) string {
	prefix := paramPrefix(field)
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d", prefix, i)
		if _, exists := q.vars[name]; !exists {
			q.vars[name] = value
			return name
		}
	}
}

// Build returns the SurrealQL string and its parameters.
func (q *Query) Build() (sql string, vars map[string]any) {
	return q.String(), q.vars
}

func (q *Query) String() string {
	parts := []string{"SELECT * FROM " + q.from}

	if len(q.where) > 0 {
		parts = append(parts, "WHERE "+strings.Join(q.where, " AND "))
	}

	if len(q.orderBy) > 0 {
		clauses := make([]string, len(q.orderBy))
		for i, o := range q.orderBy {
			clause := o.expr
			if o.collate {
				clause += " COLLATE"
			}
			if o.numeric {
				clause += " NUMERIC"
			}
			if o.desc {
				clause += " DESC"
			} else {
				clause += " ASC"
			}
			clauses[i] = clause
		}
		parts = append(parts, "ORDER BY "+strings.Join(clauses, ", "))
	}

	if q.limitVal != nil {
		parts = append(parts, fmt.Sprintf("LIMIT %d", *q.limitVal))
	}
	if q.startVal != nil {
		parts = append(parts, fmt.Sprintf("START %d", *q.startVal))
	}
	return strings.Join(parts, " ")
}

// SurrealQL renders the statement for a repeater showing the given number
// of pages of table under settings. Without load-more only the first page
// is ever requested.
func SurrealQL(table string, settings *models.Settings, pages int) (string, map[string]any) {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if pages < 1 || !settings.LoadMoreEnabled {
		pages = 1
	}
	return Select(table).
		Filter(settings.FilterRules...).
		Sort(settings.SortRules...).
		Limit(models.ClampPageSize(settings.PageSize) * pages).
		Build()
}
