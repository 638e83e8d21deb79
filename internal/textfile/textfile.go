// Package textfile reads UTF-8 text files line by line from an afero.Fs.
//
// It classifies access failures so that callers can apply a uniform policy:
// a missing path or a path that is not a regular file is reported with
// ErrNotFound and ErrNotFile, everything else (including invalid UTF-8 in the
// content) is a read fault.
package textfile

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LineFunc receives each line with its 1-based number. The line keeps its
// trailing newline, if any.
type LineFunc func(lineno int, line string) error

// Scan calls fn for every line of the file at path. A leading UTF-8 byte order
// mark is dropped. The file is closed before Scan returns.
func Scan(ctx context.Context, fs afero.Fs, path string, fn LineFunc) error {
	stat, err := fs.Stat(path)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return errors.Wrapf(ErrNotFound, "could not find '%s'", path)
		}

		return errors.WithStack(err)
	}

	if !stat.Mode().IsRegular() {
		return errors.Wrapf(ErrNotFile, "could not read '%s'", path)
	}

	file, err := fs.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}

	defer file.Close()

	decoded := transform.NewReader(file, transform.Chain(
		encoding.UTF8Validator,
		unicode.UTF8BOM.NewDecoder(),
	))

	reader := bufio.NewReader(decoded)
	lineno := 0

	for {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrapf(err, "could not read line %d", lineno+1)
		}

		if line != "" {
			lineno++

			if err := fn(lineno, line); err != nil {
				return errors.WithStack(err)
			}
		}

		if err != nil {
			return nil
		}
	}
}

// LogError emits the error-level event matching the class of err.
func LogError(ctx context.Context, logger *slog.Logger, path string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		logger.ErrorContext(ctx, "file not found", slog.String("path", path))
	case errors.Is(err, ErrNotFile):
		logger.ErrorContext(ctx, "path is not a file", slog.String("path", path))
	default:
		logger.ErrorContext(ctx, "could not read file", slog.String("path", path), slog.Any("error", err))
	}
}
