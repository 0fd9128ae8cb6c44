//go:build unix

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errCrossDevice error = unix.EXDEV

// IsCrossDevice reports whether err is a rename refused because the
// paths are on different filesystems
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
