package testutil

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/arthur-debert/gestures/pkg/types"
)

// CountingFS wraps a types.FS and records each call made through it
type CountingFS struct {
	types.FS

	mu    sync.Mutex
	calls []string
}

// NewCountingFS wraps inner
func NewCountingFS(inner types.FS) *CountingFS {
	return &CountingFS{FS: inner}
}

func (c *CountingFS) record(op, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, fmt.Sprintf("%s(%s)", op, name))
}

// Calls returns the recorded calls in order
func (c *CountingFS) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// Reset forgets every recorded call
func (c *CountingFS) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

func (c *CountingFS) Stat(name string) (fs.FileInfo, error) {
	c.record("Stat", name)
	return c.FS.Stat(name)
}

func (c *CountingFS) Open(name string) (types.File, error) {
	c.record("Open", name)
	return c.FS.Open(name)
}

func (c *CountingFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	c.record("OpenFile", name)
	return c.FS.OpenFile(name, flag, perm)
}

func (c *CountingFS) MkdirAll(path string, perm fs.FileMode) error {
	c.record("MkdirAll", path)
	return c.FS.MkdirAll(path, perm)
}

func (c *CountingFS) CanRead(name string) bool {
	c.record("CanRead", name)
	return c.FS.CanRead(name)
}

func (c *CountingFS) CanWrite(name string) bool {
	c.record("CanWrite", name)
	return c.FS.CanWrite(name)
}
