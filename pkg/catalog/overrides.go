package catalog

import "github.com/surrealdb/repeater.go/pkg/models"

type recordKey struct {
	contextID string
	recordID  string
}

// Overrides keeps per-record field patches made during a session. Patches
// never touch the catalog; Apply layers them over copies.
type Overrides struct {
	patches map[recordKey]models.Record
}

// NewOverrides returns an empty override set.
func NewOverrides() *Overrides {
	return &Overrides{patches: make(map[recordKey]models.Record)}
}

// Set patches one field of a record.
func (o *Overrides) Set(contextID, recordID, field string, value any) {
	key := recordKey{contextID, recordID}
	p, ok := o.patches[key]
	if !ok {
		p = models.Record{}
		o.patches[key] = p
	}
	p[field] = value
}

// Clear drops every patch of a record.
func (o *Overrides) Clear(contextID, recordID string) {
	delete(o.patches, recordKey{contextID, recordID})
}

// Patch returns a copy of the patch of a record, or nil.
func (o *Overrides) Patch(contextID, recordID string) models.Record {
	p, ok := o.patches[recordKey{contextID, recordID}]
	if !ok {
		return nil
	}
	return p.Clone()
}

// Len returns the number of patched records.
func (o *Overrides) Len() int {
	return len(o.patches)
}

// Apply returns records with the patches of contextID layered on top.
// Patched records are copies; unpatched records are returned as is. The id
// field is never overridden.
func (o *Overrides) Apply(contextID string, records []models.Record) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		p, ok := o.patches[recordKey{contextID, r.ID()}]
		if !ok {
			out[i] = r
			continue
		}
		merged := r.Clone()
		for k, v := range p {
			if k == "id" {
				continue
			}
			merged[k] = v
		}
		out[i] = merged
	}
	return out
}
