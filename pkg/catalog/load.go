package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/surrealdb/repeater.go/internal/codec"
	"github.com/surrealdb/repeater.go/pkg/constants"
	"github.com/surrealdb/repeater.go/pkg/models"
)

// Format is a catalog file format.
type Format = codec.Format

const (
	FormatYAML = codec.FormatYAML
	FormatJSON = codec.FormatJSON
	FormatCBOR = codec.FormatCBOR
)

// file is the on-disk shape of a catalog.
type file struct {
	Fields   map[string][]models.FieldDef `json:"fields" yaml:"fields" cbor:"fields"`
	Contexts []models.Context             `json:"contexts" yaml:"contexts" cbor:"contexts"`
}

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in demo catalog: recipes, team members and
// projects.
func Demo() *Catalog {
	c, err := Decode(bytes.NewReader(demoYAML), FormatYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog file. The format follows the file extension: .yaml,
// .yml, .json or .cbor.
func Load(path string) (*Catalog, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads a catalog in the given format.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}

	var doc file
	if err := c.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", constants.ErrInvalidCatalog, format, err)
	}
	return New(doc.Contexts, doc.Fields)
}

// Encode writes the catalog in the given format. The output decodes back to
// an equal catalog with Decode.
func (c *Catalog) Encode(w io.Writer, format Format) error {
	enc, err := codec.ForFormat(format)
	if err != nil {
		return err
	}

	data, err := enc.Marshal(file{Fields: c.fields, Contexts: c.contexts})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
