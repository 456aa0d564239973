package models

// FieldType is the value type of a field, used for display and to choose a
// sort comparison.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldRichText FieldType = "rich-text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldImage    FieldType = "image"
	FieldURL      FieldType = "url"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldRichText, FieldNumber, FieldDate, FieldImage, FieldURL:
		return true
	}
	return false
}

// FieldDef describes one field of a context type.
type FieldDef struct {
	ID    string    `json:"id" yaml:"id" cbor:"id"`
	Label string    `json:"label" yaml:"label" cbor:"label"`
	Type  FieldType `json:"type,omitempty" yaml:"type,omitempty" cbor:"type,omitempty"`
}

// Context is a named, typed data source. Contexts are catalog data and are
// never modified after loading.
type Context struct {
	ID     string   `json:"id" yaml:"id" cbor:"id"`
	Type   string   `json:"type" yaml:"type" cbor:"type"`
	Label  string   `json:"label" yaml:"label" cbor:"label"`
	Source string   `json:"source" yaml:"source" cbor:"source"`
	Items  []Record `json:"items" yaml:"items" cbor:"items"`
}
