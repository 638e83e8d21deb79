package cats

import "log/slog"

type Options struct {
	Logger *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Logger: slog.Default(),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithLogger sets the sink receiving warnings about skipped lines and errors
// about unreadable files.
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
