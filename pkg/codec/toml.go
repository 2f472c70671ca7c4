package codec

import (
	"io"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

type tomlCodec struct{}

// TOML returns the toml codec
func TOML() Codec {
	return tomlCodec{}
}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Encode(w io.Writer, doc *Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to encode toml library")
	}
	return nil
}

func (tomlCodec) Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "failed to decode toml library")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
