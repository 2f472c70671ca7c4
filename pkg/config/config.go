package config

import (
	"io/fs"
	"strconv"

	"github.com/arthur-debert/gestures/pkg/codec"
	"github.com/arthur-debert/gestures/pkg/errors"
)

// Config is the effective configuration
type Config struct {
	Library LibraryConfig `koanf:"library"`
	Logging LoggingConfig `koanf:"logging"`
}

// LibraryConfig controls where and how the library is persisted
type LibraryConfig struct {
	Path     string `koanf:"path"`
	Codec    string `koanf:"codec"`
	DirMode  string `koanf:"dir_mode"`
	FileMode string `koanf:"file_mode"`
}

// LoggingConfig controls the default log verbosity
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Validate checks values koanf cannot type-check
func (c *Config) Validate() error {
	if _, err := codec.Get(c.Library.Codec); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "invalid library.codec %q", c.Library.Codec)
	}
	if _, err := c.Library.DirPerm(); err != nil {
		return err
	}
	if _, err := c.Library.FilePerm(); err != nil {
		return err
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	return nil
}

// DirPerm parses dir_mode as an octal permission
func (l LibraryConfig) DirPerm() (fs.FileMode, error) {
	return parseMode("library.dir_mode", l.DirMode)
}

// FilePerm parses file_mode as an octal permission
func (l LibraryConfig) FilePerm() (fs.FileMode, error) {
	return parseMode("library.file_mode", l.FileMode)
}

func parseMode(key, value string) (fs.FileMode, error) {
	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid, "%s must be an octal mode, got %q", key, value)
	}
	if mode&^uint64(fs.ModePerm) != 0 {
		return 0, errors.Newf(errors.ErrConfigValid, "%s has bits outside 0777: %q", key, value)
	}
	return fs.FileMode(mode), nil
}
