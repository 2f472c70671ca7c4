package library

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/gestures/pkg/errors"
)

type bundleLibrary struct {
	base
	fsys fs.FS
	name string
}

// FromBundle returns a read-only library stored as name inside fsys,
// typically an embed.FS shipped with the program. Save always fails.
func FromBundle(fsys fs.FS, name string, opts ...Option) Library {
	o := buildOptions(opts)
	return &bundleLibrary{
		base: base{
			store:  o.store,
			logger: o.logger.With().Str("bundle", name).Logger(),
		},
		fsys: fsys,
		name: name,
	}
}

func (l *bundleLibrary) Location() string {
	return l.name
}

func (l *bundleLibrary) IsReadOnly() bool {
	return true
}

func (l *bundleLibrary) Save() bool {
	return l.report("save", l.TrySave())
}

func (l *bundleLibrary) Load() bool {
	return l.report("load", l.TryLoad())
}

func (l *bundleLibrary) TrySave() error {
	return errors.New(errors.ErrReadOnly, "bundled libraries cannot be saved").
		WithDetail("path", l.name)
}

func (l *bundleLibrary) TryLoad() error {
	if l.fsys == nil || l.name == "" {
		return errors.New(errors.ErrInvalidInput, "library has no location")
	}

	f, err := l.fsys.Open(l.name)
	if err != nil {
		code := errors.ErrFileAccess
		if stderrors.Is(err, fs.ErrNotExist) {
			code = errors.ErrFileNotFound
		}
		return errors.Wrap(err, code, "cannot open bundled library").WithDetail("path", l.name)
	}
	defer func() { _ = f.Close() }()

	return loadFrom(l.store, f, l.name)
}
