package codec

import (
	"io"

	"github.com/arthur-debert/gestures/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// YAML returns the yaml codec
func YAML() Codec {
	return yamlCodec{}
}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to encode yaml library")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to flush yaml library")
	}
	return nil
}

func (yamlCodec) Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "failed to decode yaml library")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
