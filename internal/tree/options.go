package tree

import "log/slog"

type Options struct {
	// Color enables ANSI colours: directories in blue, files in green.
	Color bool
	// Sizes appends the humanized size of each file.
	Sizes  bool
	Logger *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Color:  false,
		Sizes:  false,
		Logger: slog.Default(),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithColor(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.Color = enabled
	}
}

func WithSizes(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.Sizes = enabled
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
