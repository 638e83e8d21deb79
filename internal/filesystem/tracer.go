package filesystem

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// Tracer is an afero.Fs emitting a debug record for each lookup, open and
// directory listing done through it. Other operations are forwarded as is.
type Tracer struct {
	afero.Fs
	ctx    context.Context
	logger *slog.Logger
}

func NewTracer(ctx context.Context, fs afero.Fs, logger *slog.Logger) *Tracer {
	return &Tracer{
		Fs:     fs,
		ctx:    ctx,
		logger: logger,
	}
}

func (t *Tracer) trace(op string, name string, err error) {
	attrs := []slog.Attr{slog.String("op", op), slog.String("name", name)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	t.logger.LogAttrs(t.ctx, slog.LevelDebug, "filesystem access", attrs...)
}

// Open implements afero.Fs.
func (t *Tracer) Open(name string) (afero.File, error) {
	file, err := t.Fs.Open(name)
	t.trace("open", name, err)
	if err != nil {
		return nil, err
	}

	return &tracedFile{File: file, tracer: t}, nil
}

// OpenFile implements afero.Fs.
func (t *Tracer) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := t.Fs.OpenFile(name, flag, perm)
	t.trace("openfile", name, err)
	if err != nil {
		return nil, err
	}

	return &tracedFile{File: file, tracer: t}, nil
}

// Stat implements afero.Fs.
func (t *Tracer) Stat(name string) (os.FileInfo, error) {
	info, err := t.Fs.Stat(name)
	t.trace("stat", name, err)
	return info, err
}

// Name implements afero.Fs.
func (t *Tracer) Name() string {
	return "Tracer(" + t.Fs.Name() + ")"
}

var _ afero.Fs = &Tracer{}

type tracedFile struct {
	afero.File
	tracer *Tracer
}

// Readdir implements afero.File.
func (f *tracedFile) Readdir(count int) ([]os.FileInfo, error) {
	infos, err := f.File.Readdir(count)
	f.tracer.trace("readdir", f.File.Name(), err)
	return infos, err
}

// Readdirnames implements afero.File.
func (f *tracedFile) Readdirnames(n int) ([]string, error) {
	names, err := f.File.Readdirnames(n)
	f.tracer.trace("readdirnames", f.File.Name(), err)
	return names, err
}

// Close implements afero.File.
func (f *tracedFile) Close() error {
	err := f.File.Close()
	f.tracer.trace("close", f.File.Name(), err)
	return err
}

var _ afero.File = &tracedFile{}
