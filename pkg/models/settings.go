package models

import "github.com/surrealdb/repeater.go/pkg/constants"

// Settings are the pagination, filter and sort options of one attachment.
type Settings struct {
	PageSize        int          `json:"pageSize" yaml:"pageSize" cbor:"pageSize"`
	LoadMoreEnabled bool         `json:"loadMoreEnabled" yaml:"loadMoreEnabled" cbor:"loadMoreEnabled"`
	FilterRules     []FilterRule `json:"filterRules" yaml:"filterRules" cbor:"filterRules"`
	SortRules       []SortRule   `json:"sortRules" yaml:"sortRules" cbor:"sortRules"`
}

// DefaultSortRule orders newest records first.
func DefaultSortRule() SortRule {
	return SortRule{FieldID: constants.DefaultSortField, Direction: Desc}
}

// DefaultSettings returns the settings every new attachment starts with.
func DefaultSettings() *Settings {
	return &Settings{
		PageSize:        constants.DefaultPageSize,
		LoadMoreEnabled: true,
		FilterRules:     []FilterRule{},
		SortRules:       []SortRule{DefaultSortRule()},
	}
}

// ClampPageSize bounds n to the allowed page size range.
func ClampPageSize(n int) int {
	if n < constants.MinPageSize {
		return constants.MinPageSize
	}
	if n > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return n
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	out.FilterRules = append([]FilterRule{}, s.FilterRules...)
	out.SortRules = append([]SortRule{}, s.SortRules...)
	return &out
}
