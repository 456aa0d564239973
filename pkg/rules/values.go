package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/surrealdb/repeater.go/pkg/models"
)

// lookup returns the value of field and whether it is set to something
// other than nil.
func lookup(r models.Record, field string) (any, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// lookupFirst returns the first set value among fields.
func lookupFirst(r models.Record, fields ...string) any {
	for _, f := range fields {
		if v, ok := lookup(r, f); ok {
			return v
		}
	}
	return nil
}

// lookupText returns the first value among fields that is neither unset nor
// a blank string.
func lookupText(r models.Record, fields ...string) any {
	for _, f := range fields {
		v, ok := lookup(r, f)
		if !ok {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// stringify renders a field value the way it is displayed.
func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// numeric converts a field value to a number. Values that are not numbers
// and do not parse as one read as zero.
func numeric(v any) float64 {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
