package codec

import (
	"io"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type msgpackCodec struct{}

// Msgpack returns the binary codec
func Msgpack() Codec {
	return msgpackCodec{}
}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Encode(w io.Writer, doc *Document) error {
	if err := msgpack.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to encode msgpack library")
	}
	return nil
}

func (msgpackCodec) Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "failed to decode msgpack library")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
