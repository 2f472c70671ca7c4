package types

import "io"

// Mode selects how a Store combines deserialized entries with the ones
// it already holds.
type Mode int

const (
	// Replace discards in-memory entries before applying the decoded ones.
	Replace Mode = iota
	// Merge adds decoded gestures to the in-memory entries.
	Merge
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Merge:
		return "merge"
	default:
		return "unknown"
	}
}

// Store is the in-memory container of gesture entries a library persists.
//
// The library only relies on the dirty flag and the two byte-level
// operations; how entries are kept and encoded is up to the implementation.
type Store interface {
	// HasChanged reports whether entries were mutated since the last
	// successful Save.
	HasChanged() bool

	// Save writes every entry to w. A successful Save clears the dirty flag.
	Save(w io.Writer) error

	// MarkChanged sets the dirty flag again. Callers use it when the bytes
	// written by Save never reached their destination.
	MarkChanged()

	// Load reads entries from r and applies them according to mode. On
	// error the store is left unchanged.
	Load(r io.Reader, mode Mode) error
}

// GestureStore is a Store that also exposes its entries for mutation.
type GestureStore interface {
	Store

	// AddGesture appends g under name. A zero ID is replaced with the next
	// free ID for that entry; the stored gesture is returned.
	AddGesture(name string, g Gesture) (Gesture, error)
	RemoveGesture(name string, id int64) bool
	RemoveEntry(name string) bool

	// Entries returns the entry labels in sorted order.
	Entries() []string
	Gestures(name string) []Gesture
}
