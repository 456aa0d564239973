package codec

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) NewEncoder(w io.Writer) Encoder {
	return yaml.NewEncoder(w)
}

func (YAML) Unmarshal(data []byte, dst any) error {
	return yaml.Unmarshal(data, dst)
}

func (YAML) NewDecoder(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}
