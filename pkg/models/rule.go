package models

// ConditionKind names the predicate a FilterRule applies to a field.
type ConditionKind string

const (
	ConditionContains       ConditionKind = "contains"
	ConditionDoesNotContain ConditionKind = "does-not-contain"
	ConditionEquals         ConditionKind = "equals"
	ConditionStartsWith     ConditionKind = "starts-with"
	ConditionEndsWith       ConditionKind = "ends-with"
	ConditionIsEmpty        ConditionKind = "is-empty"
	ConditionIsNotEmpty     ConditionKind = "is-not-empty"
)

// NeedsValue reports whether the condition compares against a rule value.
func (c ConditionKind) NeedsValue() bool {
	switch c {
	case ConditionContains, ConditionDoesNotContain, ConditionEquals,
		ConditionStartsWith, ConditionEndsWith:
		return true
	}
	return false
}

// FilterRule is a single predicate over one record field.
type FilterRule struct {
	Field     string        `json:"field" yaml:"field" cbor:"field"`
	Condition ConditionKind `json:"condition" yaml:"condition" cbor:"condition"`
	Value     string        `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
}

// Direction is the ordering of a SortRule.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortRule is one key of a multi-key sort. The first rule of a list is the
// primary key.
type SortRule struct {
	FieldID   string    `json:"fieldId" yaml:"fieldId" cbor:"fieldId"`
	Direction Direction `json:"direction" yaml:"direction" cbor:"direction"`
}
