package testutil

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/arthur-debert/gestures/pkg/types"
)

// MockStore is a mock implementation of types.GestureStore for testing.
//
// It serializes one "name<TAB>id" line per gesture and keeps no stroke
// data, which is enough to observe what a library writes and reads.
type MockStore struct {
	mu            sync.RWMutex
	entries       map[string][]int64
	changed       bool
	calls         []string
	errorOn       string
	errorToReturn error
}

var _ types.GestureStore = (*MockStore)(nil)

// NewMockStore creates a new, clean mock store
func NewMockStore() *MockStore {
	return &MockStore{
		entries: make(map[string][]int64),
		calls:   []string{},
	}
}

// SetError makes the named method fail with err
func (m *MockStore) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOn = method
	m.errorToReturn = err
}

// SetChanged forces the dirty flag
func (m *MockStore) SetChanged(changed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changed = changed
}

// MarkChanged records the call and sets the dirty flag
func (m *MockStore) MarkChanged() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "MarkChanged")
	m.changed = true
}

// Calls returns the names of the methods called so far
func (m *MockStore) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// IDs returns the gesture IDs stored under name
func (m *MockStore) IDs(name string) []int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int64(nil), m.entries[name]...)
}

func (m *MockStore) HasChanged() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "HasChanged")
	return m.changed
}

func (m *MockStore) Save(w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "Save")

	if m.errorOn == "Save" {
		return m.errorToReturn
	}

	for _, name := range m.sortedNames() {
		for _, id := range m.entries[name] {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", name, id); err != nil {
				return err
			}
		}
	}
	m.changed = false
	return nil
}

func (m *MockStore) Load(r io.Reader, mode types.Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "Load:"+mode.String())

	if m.errorOn == "Load" {
		return m.errorToReturn
	}

	read := make(map[string][]int64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name, idText, ok := strings.Cut(scanner.Text(), "\t")
		if !ok {
			return fmt.Errorf("malformed line %q", scanner.Text())
		}
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed id %q: %w", idText, err)
		}
		read[name] = append(read[name], id)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if mode == types.Replace {
		m.entries = make(map[string][]int64)
	}
	for name, ids := range read {
		for _, id := range ids {
			if !containsID(m.entries[name], id) {
				m.entries[name] = append(m.entries[name], id)
			}
		}
	}
	return nil
}

func (m *MockStore) AddGesture(name string, g types.Gesture) (types.Gesture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "AddGesture")

	if m.errorOn == "AddGesture" {
		return types.Gesture{}, m.errorToReturn
	}
	if g.ID == 0 {
		g.ID = int64(len(m.entries[name]) + 1)
	}
	m.entries[name] = append(m.entries[name], g.ID)
	m.changed = true
	return g, nil
}

func (m *MockStore) RemoveGesture(name string, id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "RemoveGesture")

	ids := m.entries[name]
	for i, existing := range ids {
		if existing == id {
			m.entries[name] = append(ids[:i:i], ids[i+1:]...)
			if len(m.entries[name]) == 0 {
				delete(m.entries, name)
			}
			m.changed = true
			return true
		}
	}
	return false
}

func (m *MockStore) RemoveEntry(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "RemoveEntry")

	if _, ok := m.entries[name]; !ok {
		return false
	}
	delete(m.entries, name)
	m.changed = true
	return true
}

func (m *MockStore) Entries() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedNames()
}

func (m *MockStore) Gestures(name string) []types.Gesture {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.entries[name]
	if len(ids) == 0 {
		return nil
	}
	out := make([]types.Gesture, len(ids))
	for i, id := range ids {
		out[i] = types.Gesture{ID: id}
	}
	return out
}

func (m *MockStore) sortedNames() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsID(ids []int64, id int64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
