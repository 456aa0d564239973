package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR decodes nested maps as map[string]any so records read the same as
// they do from YAML and JSON.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBOR() *CBOR {
	enc, err := cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return &CBOR{enc: enc, dec: dec}
}

func (c *CBOR) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c *CBOR) NewEncoder(w io.Writer) Encoder {
	return c.enc.NewEncoder(w)
}

func (c *CBOR) Unmarshal(data []byte, dst any) error {
	return c.dec.Unmarshal(data, dst)
}

func (c *CBOR) NewDecoder(r io.Reader) Decoder {
	return c.dec.NewDecoder(r)
}
