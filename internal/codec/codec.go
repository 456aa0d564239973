package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/surrealdb/repeater.go/pkg/constants"
)

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}

// Codec is a Marshaler and Unmarshaler for one format.
type Codec interface {
	Marshaler
	Unmarshaler
}

// Format names a serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ForFormat returns the codec for f.
func ForFormat(f Format) (Codec, error) {
	switch f {
	case FormatYAML:
		return YAML{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatCBOR:
		return NewCBOR(), nil
	}
	return nil, fmt.Errorf("%w: %q", constants.ErrUnknownFormat, f)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("%w: %q", constants.ErrUnknownFormat, path)
}
