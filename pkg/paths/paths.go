package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/types"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for gestures
	EnvDataDir = "GESTURES_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for gestures
	EnvConfigDir = "GESTURES_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "gestures"

	// LibraryFileName is the name of the default library file
	LibraryFileName = "gestures.lib"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Paths provides the locations used by gestures
type Paths interface {
	types.Pather
	LibraryPath() string
	ConfigFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	dataDir   string
	configDir string
	stateDir  string
}

// New resolves the XDG directories, honouring the GESTURES_* overrides.
// The environment is read on every call.
func New() (Paths, error) {
	xdg.Reload()

	p := &paths{
		dataDir:   filepath.Join(xdg.DataHome, AppDirName),
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		normalized, err := p.NormalizePath(dataDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", EnvDataDir)
		}
		p.dataDir = normalized
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		normalized, err := p.NormalizePath(configDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid %s", EnvConfigDir)
		}
		p.configDir = normalized
	}

	return p, nil
}

func (p *paths) DataDir() string {
	return p.dataDir
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

// LibraryPath returns the default library file location
func (p *paths) LibraryPath() string {
	return filepath.Join(p.dataDir, LibraryFileName)
}

// ConfigFilePath returns the user configuration file location
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// NormalizePath expands ~ and returns a clean absolute path
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, strings.TrimLeft(path[2:], "/"))
	}
	// ~user forms are left alone
	return path
}
