// Package store provides the in-memory gesture store persisted by a
// library.
//
// A Store keeps entries (a label with its ordered gestures), tracks
// whether they changed since the last successful Save, and moves them
// through a codec.Codec. Load decodes the whole input before touching
// any entry, so a failed Load never leaves a half-merged store.
package store
