package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surrealdb/repeater.go/pkg/models"
)

func TestClampPageSize(t *testing.T) {
	for in, want := range map[int]int{-5: 1, 0: 1, 1: 1, 4: 4, 100: 100, 101: 100, 1 << 20: 100} {
		assert.Equal(t, want, models.ClampPageSize(in), "ClampPageSize(%d)", in)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := models.DefaultSettings()
	assert.Equal(t, 4, s.PageSize)
	assert.True(t, s.LoadMoreEnabled)
	assert.Empty(t, s.FilterRules)
	assert.NotNil(t, s.FilterRules)
	assert.Equal(t, []models.SortRule{{FieldID: "dateCreated", Direction: models.Desc}}, s.SortRules)

	assert.NotSame(t, s, models.DefaultSettings())
}

func TestSettingsClone(t *testing.T) {
	s := models.DefaultSettings()
	s.FilterRules = append(s.FilterRules, models.FilterRule{Field: "course", Condition: models.ConditionContains, Value: "breakfast"})

	c := s.Clone()
	require.Equal(t, s, c)

	c.SortRules[0].Direction = models.Asc
	c.FilterRules[0].Value = "dinner"
	assert.Equal(t, models.Desc, s.SortRules[0].Direction)
	assert.Equal(t, "breakfast", s.FilterRules[0].Value)

	var nilSettings *models.Settings
	assert.Nil(t, nilSettings.Clone())
}
