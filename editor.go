package repeater

import (
	"fmt"

	"github.com/surrealdb/repeater.go/pkg/catalog"
	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/logger"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/scope"
	"github.com/surrealdb/repeater.go/pkg/selection"
)

// Option configures an Editor in New.
type Option func(e *Editor) error

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(e *Editor) error {
		if l == nil {
			l = logger.Nop()
		}
		e.logger = l
		return nil
	}
}

// WithSections replaces the default sections with ids, in document order.
func WithSections(ids ...string) Option {
	return func(e *Editor) error {
		if len(ids) == 0 {
			return fmt.Errorf("%w: no sections", constants.ErrUnknownSection)
		}
		for _, id := range ids {
			if id == "" {
				return fmt.Errorf("%w: empty section id", constants.ErrUnknownSection)
			}
		}
		e.sections = ids
		return nil
	}
}

// WithPersonality sets the editor personality. The default is Studio.
func WithPersonality(p selection.Personality) Option {
	return func(e *Editor) error {
		e.personality = p
		return nil
	}
}

// Editor is a single editing session. It is driven by one caller at a time
// and is not safe for concurrent use.
type Editor struct {
	catalog     *catalog.Catalog
	state       *scope.State
	overrides   *catalog.Overrides
	selection   selection.Selection
	personality selection.Personality
	sections    []string
	logger      logger.Logger
}

// New starts a session over cat.
func New(cat *catalog.Catalog, opts ...Option) (*Editor, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", constants.ErrInvalidCatalog)
	}

	e := &Editor{
		catalog:     cat,
		overrides:   catalog.NewOverrides(),
		personality: selection.Studio,
		sections:    constants.DefaultSections,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.state = scope.New(e.sections...)
	return e, nil
}

// Catalog returns the catalog the session reads from.
func (e *Editor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Personality returns the editor personality.
func (e *Editor) Personality() selection.Personality {
	return e.personality
}

// Sections returns the section ids in document order.
func (e *Editor) Sections() []string {
	return e.state.Sections()
}

// State exposes the attachment state for read-only queries.
func (e *Editor) State() *scope.State {
	return e.state
}

// reject logs a refused operation and returns err.
func (e *Editor) reject(op string, err error, args ...any) error {
	e.logger.Warn(op+" rejected", append(args, "err", err)...)
	return err
}

func (e *Editor) checkContext(contextID string) error {
	if !e.catalog.Has(contextID) {
		return fmt.Errorf("%w: %q", constants.ErrUnknownContext, contextID)
	}
	return nil
}

func (e *Editor) checkRepeater(ref models.RepeaterRef) error {
	if !e.state.HasSection(ref.SectionID) {
		return fmt.Errorf("%w: %q", constants.ErrUnknownSection, ref.SectionID)
	}
	if _, ok := e.state.Repeater(ref); !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownRepeater, ref)
	}
	return nil
}

// checkScope verifies that sc exists in the document.
func (e *Editor) checkScope(sc models.Scope) error {
	switch sc.Kind {
	case models.ScopePage:
		return nil
	case models.ScopeSection:
		if !e.state.HasSection(sc.SectionID) {
			return fmt.Errorf("%w: %q", constants.ErrUnknownSection, sc.SectionID)
		}
		return nil
	case models.ScopeRepeater:
		return e.checkRepeater(sc.Ref())
	}
	return fmt.Errorf("%w: %s", constants.ErrNotConnectable, sc)
}

// connectable reports whether the personality lets contexts be connected
// at sc.
func (e *Editor) connectable(sc models.Scope) bool {
	return e.personality == selection.Studio || sc.Kind == models.ScopeRepeater
}
