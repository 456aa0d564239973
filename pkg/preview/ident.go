package preview

import (
	"strings"
	"unicode"
)

// filterExpr is the expression a filter rule reads. Titles fall back to
// names the same way record evaluation does, skipping blank titles.
func filterExpr(field string) string {
	if field == "title" {
		return "(title || name)"
	}
	return escapeIdent(field)
}

func sortExpr(field string) string {
	switch field {
	case "dateCreated":
		return "(_createdDate ?? _updatedDate ?? id)"
	case "title":
		return "(title || name)"
	case "name":
		return "(name || title)"
	}
	return escapeIdent(field)
}

// escapeIdent wraps identifiers that are not plain words in backticks.
func escapeIdent(ident string) string {
	if ident == "" || strings.ContainsFunc(ident, notIdentRune) || isReservedWord(ident) {
		return "`" + strings.ReplaceAll(ident, "`", "\\`") + "`"
	}
	return ident
}

func notIdentRune(r rune) bool {
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// paramPrefix turns a field id into a parameter name prefix.
func paramPrefix(field string) string {
	var b strings.Builder
	for _, r := range field {
		if notIdentRune(r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	if b.Len() == 0 {
		return "param"
	}
	return b.String()
}

var reserved = map[string]struct{}{
	"SELECT": {}, "FROM": {}, "WHERE": {}, "ORDER": {}, "BY": {}, "LIMIT": {},
	"START": {}, "FETCH": {}, "GROUP": {}, "SPLIT": {}, "RETURN": {},
	"PARALLEL": {}, "EXPLAIN": {}, "AND": {}, "OR": {}, "NOT": {},
	"COLLATE": {}, "NUMERIC": {}, "ASC": {}, "DESC": {},
}

func isReservedWord(word string) bool {
	_, ok := reserved[strings.ToUpper(word)]
	return ok
}
