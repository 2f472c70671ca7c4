package store

import (
	"io"
	"sort"
	"sync"

	"github.com/arthur-debert/gestures/pkg/codec"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/rs/zerolog"
)

// Store is a types.GestureStore kept in memory
type Store struct {
	mu      sync.RWMutex
	entries map[string][]types.Gesture
	changed bool
	codec   codec.Codec
	logger  zerolog.Logger
}

var _ types.GestureStore = (*Store)(nil)

// Option configures a Store
type Option func(*Store)

// WithCodec sets the codec used by Save and Load
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string][]types.Gesture),
		codec:   codec.Default(),
		logger:  logging.GetLogger("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Codec returns the codec in use
func (s *Store) Codec() codec.Codec {
	return s.codec
}

// HasChanged reports whether entries changed since the last successful Save
func (s *Store) HasChanged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changed
}

// MarkChanged sets the dirty flag without touching the entries
func (s *Store) MarkChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changed = true
}

// AddGesture appends g under name
func (s *Store) AddGesture(name string, g types.Gesture) (types.Gesture, error) {
	if name == "" {
		return types.Gesture{}, errors.New(errors.ErrEntryInvalid, "entry name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.entries[name]
	if g.ID == 0 {
		g.ID = nextID(existing)
	} else if indexOf(existing, g.ID) >= 0 {
		return types.Gesture{}, errors.Newf(errors.ErrEntryInvalid, "gesture %d already exists in %q", g.ID, name).
			WithDetail("entry", name).
			WithDetail("id", g.ID)
	}

	stored := g.Clone()
	s.entries[name] = append(existing, stored)
	s.changed = true

	s.logger.Trace().Str("entry", name).Int64("id", stored.ID).Msg("Gesture added")
	return stored.Clone(), nil
}

// RemoveGesture removes the gesture with id from name. The entry goes away
// with its last gesture.
func (s *Store) RemoveGesture(name string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	gestures := s.entries[name]
	i := indexOf(gestures, id)
	if i < 0 {
		return false
	}

	gestures = append(gestures[:i:i], gestures[i+1:]...)
	if len(gestures) == 0 {
		delete(s.entries, name)
	} else {
		s.entries[name] = gestures
	}
	s.changed = true
	return true
}

// RemoveEntry removes name and all its gestures
func (s *Store) RemoveEntry(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	s.changed = true
	return true
}

// Entries returns the entry labels in sorted order
func (s *Store) Entries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedNames(s.entries)
}

// Gestures returns a copy of the gestures stored under name
func (s *Store) Gestures(name string) []types.Gesture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gestures := s.entries[name]
	if len(gestures) == 0 {
		return nil
	}
	out := make([]types.Gesture, len(gestures))
	for i, g := range gestures {
		out[i] = g.Clone()
	}
	return out
}

// Save writes every entry to w and clears the dirty flag
func (s *Store) Save(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &codec.Document{
		Version: codec.Version,
		Entries: make([]codec.Entry, 0, len(s.entries)),
	}
	for _, name := range sortedNames(s.entries) {
		doc.Entries = append(doc.Entries, codec.Entry{Name: name, Gestures: s.entries[name]})
	}

	if err := s.codec.Encode(w, doc); err != nil {
		return err
	}

	s.changed = false
	s.logger.Debug().
		Str("codec", s.codec.Name()).
		Int("entries", len(doc.Entries)).
		Msg("Store saved")
	return nil
}

// Load reads a document from r. In Merge mode decoded gestures are added
// to the existing entries, skipping IDs an entry already holds. In Replace
// mode the existing entries are dropped first. The dirty flag is left as
// it was.
func (s *Store) Load(r io.Reader, mode types.Mode) error {
	doc, err := s.codec.Decode(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == types.Replace {
		s.entries = make(map[string][]types.Gesture, len(doc.Entries))
	}

	added, skipped := 0, 0
	for _, e := range doc.Entries {
		existing := s.entries[e.Name]
		for _, g := range e.Gestures {
			if indexOf(existing, g.ID) >= 0 {
				s.logger.Trace().Str("entry", e.Name).Int64("id", g.ID).Msg("Gesture id already present, skipped")
				skipped++
				continue
			}
			existing = append(existing, g.Clone())
			added++
		}
		if len(existing) > 0 {
			s.entries[e.Name] = existing
		}
	}

	s.logger.Debug().
		Str("codec", s.codec.Name()).
		Stringer("mode", mode).
		Int("gestures", added).
		Int("skipped", skipped).
		Msg("Store loaded")
	return nil
}

func sortedNames(entries map[string][]types.Gesture) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func indexOf(gestures []types.Gesture, id int64) int {
	for i, g := range gestures {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func nextID(gestures []types.Gesture) int64 {
	var highest int64
	for _, g := range gestures {
		if g.ID > highest {
			highest = g.ID
		}
	}
	return highest + 1
}
