package library

import (
	"io/fs"

	"github.com/arthur-debert/gestures/pkg/codec"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/store"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/rs/zerolog"
)

// Default permissions for directories and files created by Save
const (
	DefaultDirMode  fs.FileMode = 0755
	DefaultFileMode fs.FileMode = 0644
)

// Library is a gesture store bound to one storage location
type Library interface {
	// Location returns the location the library is bound to
	Location() string

	// IsReadOnly reports whether the location cannot currently be written
	IsReadOnly() bool

	// Save persists the store, reporting success
	Save() bool
	// TrySave is Save returning the failure cause
	TrySave() error

	// Load merges the persisted entries into the store, reporting success
	Load() bool
	// TryLoad is Load returning the failure cause
	TryLoad() error

	// Store returns the underlying store
	Store() types.GestureStore

	AddGesture(name string, g types.Gesture) (types.Gesture, error)
	RemoveGesture(name string, id int64) bool
	RemoveEntry(name string) bool
	Entries() []string
	Gestures(name string) []types.Gesture
}

type options struct {
	store    types.GestureStore
	codec    codec.Codec
	logger   zerolog.Logger
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// Option configures a Library
type Option func(*options)

// WithStore makes the library use s instead of a fresh store
func WithStore(s types.GestureStore) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithCodec sets the codec of the store the library creates. It has no
// effect together with WithStore.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDirMode sets the permissions of directories created by Save
func WithDirMode(mode fs.FileMode) Option {
	return func(o *options) {
		o.dirMode = mode
	}
}

// WithFileMode sets the permissions of a library file created by Save
func WithFileMode(mode fs.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   logging.GetLogger("library"),
		dirMode:  DefaultDirMode,
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = store.New(store.WithCodec(o.codec), store.WithLogger(o.logger))
	}
	return o
}

// base carries the store delegation shared by every library kind
type base struct {
	store  types.GestureStore
	logger zerolog.Logger
}

func (b *base) Store() types.GestureStore { return b.store }

func (b *base) AddGesture(name string, g types.Gesture) (types.Gesture, error) {
	return b.store.AddGesture(name, g)
}

func (b *base) RemoveGesture(name string, id int64) bool {
	return b.store.RemoveGesture(name, id)
}

func (b *base) RemoveEntry(name string) bool {
	return b.store.RemoveEntry(name)
}

func (b *base) Entries() []string {
	return b.store.Entries()
}

func (b *base) Gestures(name string) []types.Gesture {
	return b.store.Gestures(name)
}

// report collapses an operation result into the boolean contract
func (b *base) report(op string, err error) bool {
	if err == nil {
		return true
	}
	b.logger.Debug().
		Err(err).
		Str("operation", op).
		Str("code", string(errors.GetErrorCode(err))).
		Msgf("Could not %s the gesture library", op)
	return false
}
