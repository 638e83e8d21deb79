package filesystem

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// MountReadOnly mounts the backend and hands fn a read-only view of it. When
// the logger accepts debug records, every read operation is traced.
func MountReadOnly(ctx context.Context, backend Backend, logger *slog.Logger, fn MountFunc) error {
	err := backend.Mount(ctx, func(ctx context.Context, fs afero.Fs) error {
		fs = afero.NewReadOnlyFs(fs)

		if logger.Enabled(ctx, slog.LevelDebug) {
			fs = NewTracer(ctx, fs, logger)
		}

		return fn(ctx, fs)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
