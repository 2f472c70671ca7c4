// pkg/store/store_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (in-memory buffers)
// PURPOSE: Test entry mutation, dirty tracking and merge/replace loading

package store_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arthur-debert/gestures/pkg/codec"
	gerrors "github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/store"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gesture(id int64, xs ...float32) types.Gesture {
	points := make([]types.Point, len(xs))
	for i, x := range xs {
		points[i] = types.Point{X: x, Y: x * 2, Timestamp: int64(i)}
	}
	return types.Gesture{ID: id, Strokes: []types.Stroke{{Points: points}}}
}

func encoded(t *testing.T, s *store.Store) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	return &buf
}

func TestNew_IsCleanAndEmpty(t *testing.T) {
	s := store.New()
	assert.False(t, s.HasChanged())
	assert.Empty(t, s.Entries())
	assert.Equal(t, codec.DefaultName, s.Codec().Name())
}

func TestAddGesture(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		setup     []types.Gesture
		add       types.Gesture
		wantID    int64
		wantError gerrors.ErrorCode
	}{
		{
			name:   "assigns_first_id",
			entry:  "circle",
			add:    gesture(0, 1, 2),
			wantID: 1,
		},
		{
			name:   "assigns_next_free_id",
			entry:  "circle",
			setup:  []types.Gesture{gesture(4, 1)},
			add:    gesture(0, 3),
			wantID: 5,
		},
		{
			name:   "keeps_explicit_id",
			entry:  "circle",
			add:    gesture(42, 1),
			wantID: 42,
		},
		{
			name:      "rejects_duplicate_id",
			entry:     "circle",
			setup:     []types.Gesture{gesture(3, 1)},
			add:       gesture(3, 9),
			wantError: gerrors.ErrEntryInvalid,
		},
		{
			name:      "rejects_empty_name",
			entry:     "",
			add:       gesture(0, 1),
			wantError: gerrors.ErrEntryInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New()
			for _, g := range tt.setup {
				_, err := s.AddGesture(tt.entry, g)
				require.NoError(t, err)
			}

			got, err := s.AddGesture(tt.entry, tt.add)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.True(t, gerrors.IsErrorCode(err, tt.wantError))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.True(t, s.HasChanged())
			assert.Len(t, s.Gestures(tt.entry), len(tt.setup)+1)
		})
	}
}

func TestGestures_ReturnsCopies(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(1, 1, 2))
	require.NoError(t, err)

	got := s.Gestures("circle")
	got[0].Strokes[0].Points[0].X = 100

	assert.Equal(t, float32(1), s.Gestures("circle")[0].Strokes[0].Points[0].X)
	assert.Nil(t, s.Gestures("missing"))
}

func TestRemove(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(1, 1))
	require.NoError(t, err)
	_, err = s.AddGesture("circle", gesture(2, 2))
	require.NoError(t, err)
	_, err = s.AddGesture("check", gesture(1, 3))
	require.NoError(t, err)
	_ = encoded(t, s)
	require.False(t, s.HasChanged())

	assert.False(t, s.RemoveGesture("circle", 99))
	assert.False(t, s.HasChanged(), "no-op removal keeps the store clean")

	assert.True(t, s.RemoveGesture("circle", 1))
	assert.True(t, s.HasChanged())
	assert.Len(t, s.Gestures("circle"), 1)

	assert.True(t, s.RemoveGesture("circle", 2))
	assert.Equal(t, []string{"check"}, s.Entries(), "entry disappears with its last gesture")

	assert.True(t, s.RemoveEntry("check"))
	assert.False(t, s.RemoveEntry("check"))
	assert.Empty(t, s.Entries())
}

func TestSave_ClearsDirtyFlag(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(0, 1))
	require.NoError(t, err)
	require.True(t, s.HasChanged())

	buf := encoded(t, s)
	assert.NotZero(t, buf.Len())
	assert.False(t, s.HasChanged())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSave_FailureKeepsDirtyFlag(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(0, 1))
	require.NoError(t, err)

	err = s.Save(failingWriter{})
	require.Error(t, err)
	assert.True(t, s.HasChanged())
}

func TestLoad_MergeAddsToExisting(t *testing.T) {
	source := store.New()
	_, err := source.AddGesture("check", gesture(1, 5))
	require.NoError(t, err)
	_, err = source.AddGesture("circle", gesture(7, 6))
	require.NoError(t, err)
	data := encoded(t, source)

	s := store.New()
	_, err = s.AddGesture("circle", gesture(1, 1))
	require.NoError(t, err)

	require.NoError(t, s.Load(data, types.Merge))

	assert.Equal(t, []string{"check", "circle"}, s.Entries())
	assert.Len(t, s.Gestures("circle"), 2)
	assert.True(t, s.HasChanged(), "pending changes survive a merge")
}

func TestLoad_MergeSkipsKnownIDs(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(1, 1))
	require.NoError(t, err)
	data := encoded(t, s)

	require.NoError(t, s.Load(data, types.Merge))
	assert.Len(t, s.Gestures("circle"), 1)
	assert.False(t, s.HasChanged())
}

func TestLoad_MergeLogsSkippedIDs(t *testing.T) {
	source := store.New()
	_, err := source.AddGesture("circle", gesture(1, 9))
	require.NoError(t, err)
	_, err = source.AddGesture("circle", gesture(2, 8))
	require.NoError(t, err)
	data := encoded(t, source)

	var logs bytes.Buffer
	s := store.New(store.WithLogger(zerolog.New(&logs)))
	_, err = s.AddGesture("circle", gesture(1, 1))
	require.NoError(t, err)

	require.NoError(t, s.Load(data, types.Merge))
	assert.Len(t, s.Gestures("circle"), 2)
	assert.Contains(t, logs.String(), `"skipped":1`)
	assert.Contains(t, logs.String(), `"gestures":1`)
}

func TestMarkChanged(t *testing.T) {
	s := store.New()
	_, err := s.AddGesture("circle", gesture(0, 1))
	require.NoError(t, err)
	_ = encoded(t, s)
	require.False(t, s.HasChanged())

	s.MarkChanged()
	assert.True(t, s.HasChanged())
	assert.Equal(t, []string{"circle"}, s.Entries())
}

func TestLoad_ReplaceDropsExisting(t *testing.T) {
	source := store.New()
	_, err := source.AddGesture("check", gesture(1, 5))
	require.NoError(t, err)
	data := encoded(t, source)

	s := store.New()
	_, err = s.AddGesture("circle", gesture(1, 1))
	require.NoError(t, err)

	require.NoError(t, s.Load(data, types.Replace))
	assert.Equal(t, []string{"check"}, s.Entries())
}

func TestLoad_CorruptInputLeavesStoreUnchanged(t *testing.T) {
	for _, mode := range []types.Mode{types.Merge, types.Replace} {
		t.Run(mode.String(), func(t *testing.T) {
			s := store.New()
			_, err := s.AddGesture("circle", gesture(1, 1))
			require.NoError(t, err)

			err = s.Load(strings.NewReader("not a library"), mode)
			require.Error(t, err)
			assert.True(t, gerrors.IsErrorCode(err, gerrors.ErrDecode))
			assert.Equal(t, []string{"circle"}, s.Entries())
		})
	}
}

func TestWithCodec(t *testing.T) {
	s := store.New(store.WithCodec(codec.YAML()))
	_, err := s.AddGesture("circle", gesture(0, 1))
	require.NoError(t, err)

	buf := encoded(t, s)
	assert.Contains(t, buf.String(), "name: circle")

	other := store.New(store.WithCodec(codec.YAML()))
	require.NoError(t, other.Load(buf, types.Merge))
	assert.Equal(t, s.Gestures("circle"), other.Gestures("circle"))

	assert.Equal(t, codec.DefaultName, store.New(store.WithCodec(nil)).Codec().Name())
}
