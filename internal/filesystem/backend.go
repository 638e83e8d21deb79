package filesystem

import (
	"context"

	"github.com/spf13/afero"
)

type MountFunc func(ctx context.Context, fs afero.Fs) error

// Backend gives access to a filesystem for the duration of fn. Connections
// or handles opened by Mount are released when it returns.
type Backend interface {
	Mount(ctx context.Context, fn MountFunc) error
}
