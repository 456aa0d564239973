package repeater

import (
	"fmt"
	"slices"

	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/rules"
)

// Settings setters address either an attachment at a page or section scope
// (sc plus contextID) or a repeater (a repeater scope; contextID may be
// empty). Updating a repeater with a parent assignment changes the shared
// attachment, so every repeater inheriting it sees the change.

// Settings returns the stored settings of an attachment or a repeater.
func (e *Editor) Settings(sc models.Scope, contextID string) (*models.Settings, error) {
	if err := e.checkScope(sc); err != nil {
		return nil, err
	}
	if sc.Kind == models.ScopeRepeater {
		return e.state.ResolveEffectiveSettings(sc.Ref()), nil
	}
	s := e.state.Settings(sc, contextID)
	if s == nil {
		return nil, fmt.Errorf("%w: %q at %s", constants.ErrNotAttached, contextID, sc)
	}
	return s, nil
}

// SetPageSize sets the page size, clamped to [1, 100].
func (e *Editor) SetPageSize(sc models.Scope, contextID string, n int) error {
	if n != models.ClampPageSize(n) {
		e.logger.Debug("page size clamped", "requested", n, "stored", models.ClampPageSize(n))
	}
	return e.update("page size", sc, contextID, func(s *models.Settings) {
		s.PageSize = n
	})
}

// SetLoadMore turns the load-more button on or off.
func (e *Editor) SetLoadMore(sc models.Scope, contextID string, enabled bool) error {
	return e.update("load more", sc, contextID, func(s *models.Settings) {
		s.LoadMoreEnabled = enabled
	})
}

// SetFilterRules replaces the filter rules. Incomplete rules are dropped.
// Rules with an unknown condition are kept and always match.
func (e *Editor) SetFilterRules(sc models.Scope, contextID string, filters []models.FilterRule) error {
	complete := rules.CompleteFilterRules(filters)
	if dropped := len(filters) - len(complete); dropped > 0 {
		e.logger.Debug("incomplete filter rules dropped", "scope", sc.String(), "count", dropped)
	}
	for _, f := range complete {
		if !known(f.Condition) {
			e.logger.Warn("unknown filter condition always matches", "scope", sc.String(),
				"field", f.Field, "condition", string(f.Condition))
		}
	}
	return e.update("filter rules", sc, contextID, func(s *models.Settings) {
		s.FilterRules = complete
	})
}

// SetSortRules replaces the sort rules. An empty list keeps records in
// catalog order.
func (e *Editor) SetSortRules(sc models.Scope, contextID string, sorts []models.SortRule) error {
	sorts = slices.Clone(sorts)
	return e.update("sort rules", sc, contextID, func(s *models.Settings) {
		s.SortRules = sorts
	})
}

func (e *Editor) update(what string, sc models.Scope, contextID string, fn func(*models.Settings)) error {
	if err := e.checkScope(sc); err != nil {
		return e.reject("set "+what, err, "scope", sc.String(), "context", contextID)
	}

	var ok bool
	if sc.Kind == models.ScopeRepeater {
		ok = e.state.UpdateRepeaterSettings(sc.Ref(), fn)
	} else {
		ok = e.state.UpdateSettings(sc, contextID, fn)
	}
	if !ok {
		return e.reject("set "+what, fmt.Errorf("%w: %q at %s", constants.ErrNotAttached, contextID, sc),
			"scope", sc.String(), "context", contextID)
	}
	e.logger.Debug("settings updated", "setting", what, "scope", sc.String(), "context", contextID)
	return nil
}

func known(c models.ConditionKind) bool {
	for _, k := range rules.Conditions() {
		if k.Kind == c {
			return true
		}
	}
	return false
}
