package library

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/filesystem"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/types"
)

type fileLibrary struct {
	base
	fs       types.FS
	path     string
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// FromFile returns a library stored in the file at path on the OS
// filesystem. No I/O happens until Load or Save.
func FromFile(path string, opts ...Option) Library {
	return FromFileFS(filesystem.NewOS(), path, opts...)
}

// FromFileFS returns a library stored in the file at path on fsys
func FromFileFS(fsys types.FS, path string, opts ...Option) Library {
	o := buildOptions(opts)
	return &fileLibrary{
		base: base{
			store:  o.store,
			logger: o.logger.With().Str("path", path).Logger(),
		},
		fs:       fsys,
		path:     path,
		dirMode:  o.dirMode,
		fileMode: o.fileMode,
	}
}

func (l *fileLibrary) Location() string {
	return l.path
}

func (l *fileLibrary) IsReadOnly() bool {
	if l.path == "" {
		return true
	}
	return !l.fs.CanWrite(l.path)
}

func (l *fileLibrary) Save() bool {
	return l.report("save", l.TrySave())
}

func (l *fileLibrary) Load() bool {
	return l.report("load", l.TryLoad())
}

func (l *fileLibrary) TrySave() (err error) {
	if l.path == "" {
		return errors.New(errors.ErrInvalidInput, "library has no location")
	}
	if !l.store.HasChanged() {
		l.logger.Trace().Msg("No unsaved changes, skipping save")
		return nil
	}

	done := logging.LogOperationStart(l.logger, "save")
	defer done()

	if err := l.ensureParent(); err != nil {
		return err
	}

	f, err := l.fs.OpenFile(l.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, l.fileMode)
	if err != nil {
		return openError(err, l.path, errors.ErrFileWrite, "cannot open library for writing")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			// the store already counts this write as saved
			l.store.MarkChanged()
			err = errors.Wrap(cerr, errors.ErrFileWrite, "cannot close library file").
				WithDetail("path", l.path)
		}
	}()

	if serr := l.store.Save(f); serr != nil {
		return errors.Wrap(serr, errors.ErrFileWrite, "cannot write library").
			WithDetail("path", l.path)
	}
	return nil
}

func (l *fileLibrary) ensureParent() error {
	dir := filepath.Dir(l.path)
	info, err := l.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New(errors.ErrDirCreate, "library parent is not a directory").
				WithDetail("path", dir)
		}
		return nil
	}

	if err := l.fs.MkdirAll(dir, l.dirMode); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create library directory").
			WithDetail("path", dir)
	}
	l.logger.Debug().Str("dir", dir).Msg("Created library directory")
	return nil
}

func (l *fileLibrary) TryLoad() error {
	if l.path == "" {
		return errors.New(errors.ErrInvalidInput, "library has no location")
	}

	info, err := l.fs.Stat(l.path)
	if err != nil {
		return openError(err, l.path, errors.ErrFileAccess, "cannot stat library")
	}
	if info.IsDir() {
		return errors.New(errors.ErrFileAccess, "library location is a directory").
			WithDetail("path", l.path)
	}
	if !l.fs.CanRead(l.path) {
		return errors.New(errors.ErrPermission, "library is not readable").
			WithDetail("path", l.path)
	}

	done := logging.LogOperationStart(l.logger, "load")
	defer done()

	f, err := l.fs.Open(l.path)
	if err != nil {
		return openError(err, l.path, errors.ErrFileAccess, "cannot open library for reading")
	}
	defer func() { _ = f.Close() }()

	return loadFrom(l.store, f, l.path)
}

// loadFrom merges r into s, telling read failures apart from bad content
func loadFrom(s types.Store, r io.Reader, location string) error {
	tr := &trackingReader{r: r}
	if err := s.Load(tr, types.Merge); err != nil {
		if tr.err != nil {
			return errors.Wrap(tr.err, errors.ErrFileAccess, "cannot read library").
				WithDetail("path", location)
		}
		return errors.Wrap(err, errors.ErrDecode, "cannot decode library").
			WithDetail("path", location)
	}
	return nil
}

// trackingReader remembers the first non-EOF read error
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

func openError(err error, path string, fallback errors.ErrorCode, msg string) error {
	code := fallback
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = errors.ErrFileNotFound
	case stderrors.Is(err, fs.ErrPermission):
		code = errors.ErrPermission
	}
	return errors.Wrap(err, code, msg).WithDetail("path", path)
}
