//go:build unix

package filesystem

import "golang.org/x/sys/unix"

type accessMode uint32

const (
	accessRead  accessMode = unix.R_OK
	accessWrite accessMode = unix.W_OK
)

// canAccess asks the kernel, so effective uid, ACLs and read-only mounts
// are all taken into account.
func canAccess(name string, mode accessMode) bool {
	return unix.Access(name, uint32(mode)) == nil
}
