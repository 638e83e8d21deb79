package common

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/bornholm/exercises/internal/filesystem/backend"
	"github.com/bornholm/exercises/internal/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	// Filesystem backends

	_ "github.com/bornholm/exercises/internal/filesystem/backend/local"
	_ "github.com/bornholm/exercises/internal/filesystem/backend/sftp"
)

const (
	ParamConfig = "config"
)

var ErrMissingArgument = errors.New("missing argument")

// InitInputSource loads the values of the given flags from the file named
// by the global --config flag, when set.
func InitInputSource(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewResolverSourceFromFlagFunc(ParamConfig))
}

// RequireArgument returns the first positional argument. When it is missing
// the usage line of the command is written to the standard output and
// ErrMissingArgument is returned.
func RequireArgument(cCtx *cli.Context) (string, error) {
	if cCtx.NArg() < 1 {
		fmt.Fprintf(cCtx.App.Writer, "Usage: %s %s %s\n", cCtx.App.Name, cCtx.Command.Name, cCtx.Command.ArgsUsage)
		return "", errors.WithStack(ErrMissingArgument)
	}

	return cCtx.Args().First(), nil
}

type LocationFunc func(ctx context.Context, fs afero.Fs, path string) error

// MountLocation resolves location (a plain path or a filesystem DSN), mounts
// the matching backend read-only and calls fn with the target path.
func MountLocation(ctx context.Context, location string, fn LocationFunc) error {
	b, path, err := backend.Resolve(location)
	if err != nil {
		return errors.Wrapf(err, "could not resolve location '%s'", ScrubbedLocation(location))
	}

	ctx = log.WithAttrs(ctx, slog.String("location", ScrubbedLocation(location)))

	err = filesystem.MountReadOnly(ctx, b, slog.Default(), func(ctx context.Context, fs afero.Fs) error {
		return fn(ctx, fs, path)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ScrubbedLocation hides the password a DSN may carry.
func ScrubbedLocation(location string) string {
	u, err := url.Parse(location)
	if err != nil || u.User == nil {
		return location
	}

	return u.Redacted()
}
