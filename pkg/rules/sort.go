package rules

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// sortKey is a resolved sort value. Whether a field compares numerically is
// decided by its id, never by the values of a particular pair of records.
type sortKey struct {
	num     float64
	str     string
	numeric bool
}

// IsNumericField reports whether fieldID always sorts numerically.
func IsNumericField(fieldID string) bool {
	switch fieldID {
	case "year", "value":
		return true
	}
	return false
}

// sortValue resolves the key a record sorts by for fieldID.
func sortValue(r models.Record, fieldID string) sortKey {
	switch fieldID {
	case "dateCreated":
		return sortKey{str: stringify(lookupFirst(r, "_createdDate", "_updatedDate", "id"))}
	case "title":
		return sortKey{str: stringify(lookupText(r, "title", "name"))}
	case "name":
		return sortKey{str: stringify(lookupText(r, "name", "title"))}
	case "year", "value":
		return sortKey{num: numeric(lookupFirst(r, fieldID)), numeric: true}
	default:
		v, _ := lookup(r, fieldID)
		return sortKey{str: stringify(v)}
	}
}

// newCollator returns a collator that orders digit runs by numeric value,
// so "item2" sorts before "item10".
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Numeric)
}

// CompareNatural compares two strings the way string sort fields do, with
// digit runs ordered by value.
func CompareNatural(a, b string) int {
	return newCollator().CompareString(a, b)
}

func compareKeys(c *collate.Collator, a, b sortKey) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.num, b.num)
	}
	return c.CompareString(a.str, b.str)
}

type sortEntry struct {
	record models.Record
	keys   []sortKey
}

// EvaluateSort returns a new slice holding records ordered by rules. The sort
// is stable: records that compare equal under every rule keep their input
// order. With no rules the result is a copy of the input.
func EvaluateSort(records []models.Record, rules []models.SortRule) []models.Record {
	if len(rules) == 0 {
		return slices.Clone(records)
	}

	entries := make([]sortEntry, len(records))
	for i, r := range records {
		keys := make([]sortKey, len(rules))
		for j, rule := range rules {
			keys[j] = sortValue(r, rule.FieldID)
		}
		entries[i] = sortEntry{record: r, keys: keys}
	}

	c := newCollator()
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		for j, rule := range rules {
			res := compareKeys(c, a.keys[j], b.keys[j])
			if res == 0 {
				continue
			}
			if rule.Direction == models.Desc {
				return -res
			}
			return res
		}
		return 0
	})

	out := make([]models.Record, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out
}
