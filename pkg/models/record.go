package models

// Record is one item of a collection. Field presence varies by context type;
// the only guaranteed field is "id".
type Record map[string]any

// ID returns the record's id field, or "" when it is missing or not a string.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
