// Package rules evaluates declarative filter and sort rules over records.
//
// Every function in this package is pure and total: malformed rules and
// unknown fields never produce errors. A field that cannot be resolved reads
// as the empty string (or zero for numeric fields), an unknown filter
// condition always matches, and an unknown sort field compares equal.
//
// Filtering is a conjunction of rules:
//
//	out := rules.EvaluateFilter(records, []models.FilterRule{
//		{Field: "course", Condition: models.ConditionEquals, Value: "breakfast"},
//	})
//
// Sorting is stable and multi-key, the first rule being the primary key:
//
//	out = rules.EvaluateSort(out, []models.SortRule{
//		{FieldID: "course", Direction: models.Asc},
//		{FieldID: "title", Direction: models.Asc},
//	})
package rules
