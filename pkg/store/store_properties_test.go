package store_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arthur-debert/gestures/pkg/store"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawStore builds a store with a random set of labels, each holding
// gestures with IDs 1..n.
func drawStore(rt *rapid.T, label string) *store.Store {
	s := store.New()
	names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 0, 5, rapid.ID[string]).Draw(rt, label)
	for _, name := range names {
		n := rapid.IntRange(1, 3).Draw(rt, fmt.Sprintf("%s-%s-count", label, name))
		for i := 0; i < n; i++ {
			x := rapid.Float32Range(-100, 100).Draw(rt, fmt.Sprintf("%s-%s-%d", label, name, i))
			if _, err := s.AddGesture(name, gesture(0, x)); err != nil {
				rt.Fatalf("AddGesture: %v", err)
			}
		}
	}
	return s
}

// TestLoad_Merge_Property proves merging never loses an in-memory entry
// and always exposes every entry from the source.
func TestLoad_Merge_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mem := drawStore(rt, "mem")
		disk := drawStore(rt, "disk")

		var buf bytes.Buffer
		if err := disk.Save(&buf); err != nil {
			rt.Fatalf("Save: %v", err)
		}
		before := map[string]int{}
		for _, name := range mem.Entries() {
			before[name] = len(mem.Gestures(name))
		}

		if err := mem.Load(&buf, types.Merge); err != nil {
			rt.Fatalf("Load: %v", err)
		}

		for name, n := range before {
			if got := len(mem.Gestures(name)); got < n {
				rt.Fatalf("entry %q shrank from %d to %d", name, n, got)
			}
		}
		for _, name := range disk.Entries() {
			if len(mem.Gestures(name)) == 0 {
				rt.Fatalf("entry %q missing after merge", name)
			}
		}
	})
}

// TestSaveLoad_Replace_Property proves a save followed by a replace-load
// reproduces the saved entries exactly.
func TestSaveLoad_Replace_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := drawStore(rt, "src")
		dst := drawStore(rt, "dst")

		var buf bytes.Buffer
		require.NoError(rt, src.Save(&buf))
		require.NoError(rt, dst.Load(&buf, types.Replace))

		require.Equal(rt, src.Entries(), dst.Entries())
		for _, name := range src.Entries() {
			require.Equal(rt, src.Gestures(name), dst.Gestures(name))
		}
	})
}
