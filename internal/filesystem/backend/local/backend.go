package local

import (
	"context"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Backend exposes the local disk.
type Backend struct{}

// Mount implements filesystem.Backend.
func (b *Backend) Mount(ctx context.Context, fn filesystem.MountFunc) error {
	if err := fn(ctx, afero.NewOsFs()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func New() *Backend {
	return &Backend{}
}

var _ filesystem.Backend = &Backend{}
