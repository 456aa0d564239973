package catalog

import (
	"fmt"
	"slices"

	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
)

// Catalog is an immutable set of contexts and field tables.
type Catalog struct {
	contexts []models.Context
	byID     map[string]int
	fields   map[string][]models.FieldDef
}

// New validates contexts and fields and builds a catalog from them.
//
// Context ids must be unique and non-empty, every record needs a string id
// that is unique within its context, and field types must be known.
func New(contexts []models.Context, fields map[string][]models.FieldDef) (*Catalog, error) {
	c := &Catalog{
		contexts: make([]models.Context, 0, len(contexts)),
		byID:     make(map[string]int, len(contexts)),
		fields:   make(map[string][]models.FieldDef, len(fields)),
	}

	for typ, defs := range fields {
		seen := make(map[string]bool, len(defs))
		for _, f := range defs {
			if f.ID == "" {
				return nil, fmt.Errorf("%w: field without id in type %q", constants.ErrInvalidCatalog, typ)
			}
			if seen[f.ID] {
				return nil, fmt.Errorf("%w: duplicate field %q in type %q", constants.ErrInvalidCatalog, f.ID, typ)
			}
			seen[f.ID] = true
			if f.Type != "" && !f.Type.Valid() {
				return nil, fmt.Errorf("%w: field %q has unknown type %q", constants.ErrInvalidCatalog, f.ID, f.Type)
			}
		}
		c.fields[typ] = slices.Clone(defs)
	}

	for _, ctx := range contexts {
		if ctx.ID == "" {
			return nil, fmt.Errorf("%w: context without id", constants.ErrInvalidCatalog)
		}
		if _, dup := c.byID[ctx.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate context %q", constants.ErrInvalidCatalog, ctx.ID)
		}

		seen := make(map[string]bool, len(ctx.Items))
		for i, item := range ctx.Items {
			id := item.ID()
			if id == "" {
				return nil, fmt.Errorf("%w: item %d of context %q has no id", constants.ErrInvalidCatalog, i, ctx.ID)
			}
			if seen[id] {
				return nil, fmt.Errorf("%w: duplicate item %q in context %q", constants.ErrInvalidCatalog, id, ctx.ID)
			}
			seen[id] = true
		}

		ctx.Items = slices.Clone(ctx.Items)
		c.byID[ctx.ID] = len(c.contexts)
		c.contexts = append(c.contexts, ctx)
	}

	return c, nil
}

// Context returns the context with the given id.
func (c *Catalog) Context(id string) (models.Context, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Context{}, false
	}
	return c.contexts[i], true
}

// Has reports whether id names a context of the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Contexts returns every context in declaration order.
func (c *Catalog) Contexts() []models.Context {
	return slices.Clone(c.contexts)
}

// IDs returns the context ids in declaration order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.contexts))
	for i, ctx := range c.contexts {
		out[i] = ctx.ID
	}
	return out
}

// Label returns the display label of a context, or its id when the context
// is unknown or unlabelled.
func (c *Catalog) Label(id string) string {
	ctx, ok := c.Context(id)
	if !ok || ctx.Label == "" {
		return id
	}
	return ctx.Label
}

// Fields returns the field table of a context type.
func (c *Catalog) Fields(typ string) []models.FieldDef {
	return slices.Clone(c.fields[typ])
}

// FieldsFor returns the field table of a context's type.
func (c *Catalog) FieldsFor(contextID string) []models.FieldDef {
	ctx, ok := c.Context(contextID)
	if !ok {
		return nil
	}
	return c.Fields(ctx.Type)
}

// Items returns the records of a context. The slice is a copy; the records
// themselves are shared and must be treated as read-only.
func (c *Catalog) Items(contextID string) []models.Record {
	ctx, ok := c.Context(contextID)
	if !ok {
		return nil
	}
	return slices.Clone(ctx.Items)
}
