package types

import (
	"io"
	"io/fs"
)

// File is an open file handed out by an FS
type File interface {
	io.ReadWriteCloser
	Name() string
}

// FS is the filesystem interface required for library operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	Chmod(name string, mode fs.FileMode) error

	// Access probes. These are evaluated on every call, never cached.
	// A path that does not exist is neither readable nor writable.
	CanRead(name string) bool
	CanWrite(name string) bool
}

// Pather provides the base directories used by the module
type Pather interface {
	// DataDir returns the XDG data directory for gestures
	DataDir() string

	// ConfigDir returns the XDG config directory for gestures
	ConfigDir() string

	// StateDir returns the XDG state directory for gestures
	StateDir() string
}
