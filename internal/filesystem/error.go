package filesystem

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// IsNotExist reports whether err means that a path cannot be reached: the
// path is missing, one of its parents is not a directory or a symbolic link
// along it loops.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
