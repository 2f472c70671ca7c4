package testutil

import (
	"os"
	"testing"

	"github.com/arthur-debert/gestures/pkg/filesystem"
	"github.com/arthur-debert/gestures/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// SkipIfRoot skips tests that depend on permission bits being enforced.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}
