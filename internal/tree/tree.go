// Package tree renders a directory hierarchy as an indented text tree using
// box-drawing connectors.
package tree

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/exercises/internal/filesystem"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	connectorBranch = "├── "
	connectorCorner = "└── "
	prefixPipe      = "│   "
	prefixBlank     = "    "

	markerPermissionDenied = "[Permission Denied]"
)

// Print writes the tree rooted at root to w.
//
// A missing root or a root that is not a directory produces a single error
// line on w and a nil error. Directories that cannot be listed for lack of
// permission are marked in place and skipped. Any other listing failure
// aborts the rendering and is returned.
func Print(ctx context.Context, fs afero.Fs, root string, w io.Writer, funcs ...OptionFunc) error {
	opts := NewOptions(funcs...)

	p := newPrinter(fs, w, opts)

	root = filepath.Clean(root)

	stat, err := fs.Stat(root)
	if err != nil {
		if filesystem.IsNotExist(err) {
			p.println(fmt.Sprintf("Error: path does not exist: %s", root))
			return p.err
		}

		return errors.Wrapf(err, "could not stat '%s'", root)
	}

	if !stat.IsDir() {
		p.println(fmt.Sprintf("Error: path is not a directory: %s", root))
		return p.err
	}

	label := root
	if !strings.HasSuffix(label, string(filepath.Separator)) {
		label += string(filepath.Separator)
	}

	p.println(p.dir.Sprint(label))

	if err := p.printDir(ctx, root, ""); err != nil {
		return errors.WithStack(err)
	}

	return p.err
}

type printer struct {
	fs     afero.Fs
	w      io.Writer
	opts   *Options
	dir    *color.Color
	file   *color.Color
	denied *color.Color
	err    error
}

func newPrinter(fs afero.Fs, w io.Writer, opts *Options) *printer {
	p := &printer{
		fs:     fs,
		w:      w,
		opts:   opts,
		dir:    color.New(color.FgBlue),
		file:   color.New(color.FgGreen),
		denied: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.dir, p.file, p.denied} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *printer) printDir(ctx context.Context, dir string, prefix string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	entries, err := listEntries(p.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			p.opts.Logger.DebugContext(ctx, "permission denied", slog.String("path", dir))
			p.println(prefix + p.denied.Sprint(markerPermissionDenied))
			return nil
		}

		return errors.Wrapf(err, "could not list directory '%s'", dir)
	}

	for idx, e := range entries {
		last := idx == len(entries)-1

		connector := connectorBranch
		if last {
			connector = connectorCorner
		}

		if e.isDir {
			p.println(prefix + connector + p.dir.Sprint(e.name+"/"))

			childPrefix := prefix + prefixPipe
			if last {
				childPrefix = prefix + prefixBlank
			}

			if err := p.printDir(ctx, filepath.Join(dir, e.name), childPrefix); err != nil {
				return errors.WithStack(err)
			}

			continue
		}

		label := p.file.Sprint(e.name)
		if p.opts.Sizes && e.isFile {
			label += " (" + humanize.Bytes(uint64(e.size)) + ")"
		}

		p.println(prefix + connector + label)
	}

	return nil
}

// println keeps the first write error and ignores subsequent writes.
func (p *printer) println(line string) {
	if p.err != nil {
		return
	}

	if _, err := fmt.Fprintln(p.w, line); err != nil {
		p.err = errors.WithStack(err)
	}
}
