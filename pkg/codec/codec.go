package codec

import (
	"io"
	"sort"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/types"
)

// Version is the document format version written by every codec
const Version = 1

// DefaultName is the codec used when none is configured
const DefaultName = "msgpack"

// Entry is one labelled list of gestures
type Entry struct {
	Name     string          `msgpack:"name" yaml:"name" toml:"name"`
	Gestures []types.Gesture `msgpack:"gestures" yaml:"gestures" toml:"gestures"`
}

// Document is the serialized form of a store
type Document struct {
	Version int     `msgpack:"version" yaml:"version" toml:"version"`
	Entries []Entry `msgpack:"entries" yaml:"entries" toml:"entries"`
}

// Codec encodes and decodes documents
type Codec interface {
	Name() string
	Encode(w io.Writer, doc *Document) error
	Decode(r io.Reader) (*Document, error)
}

var registry = map[string]Codec{
	"msgpack": Msgpack(),
	"yaml":    YAML(),
	"toml":    TOML(),
}

// Get returns the codec registered under name
func Get(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownCodec, "unknown codec %q", name).
			WithDetail("available", Names())
	}
	return c, nil
}

// Default returns the default codec
func Default() Codec {
	return registry[DefaultName]
}

// Names returns the registered codec names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the version tag and entry labels of a decoded document
func Validate(doc *Document) error {
	if doc == nil {
		return errors.New(errors.ErrDecode, "empty document")
	}
	if doc.Version != Version {
		return errors.Newf(errors.ErrDecode, "unsupported library version %d", doc.Version).
			WithDetail("version", doc.Version)
	}
	for i, e := range doc.Entries {
		if e.Name == "" {
			return errors.Newf(errors.ErrDecode, "entry %d has no name", i)
		}
	}
	return nil
}
