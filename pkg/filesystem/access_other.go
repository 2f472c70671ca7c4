//go:build !unix

package filesystem

import "os"

type accessMode uint32

const (
	accessRead  accessMode = 0o400
	accessWrite accessMode = 0o200
)

func canAccess(name string, mode accessMode) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return uint32(info.Mode().Perm())&uint32(mode) != 0
}
