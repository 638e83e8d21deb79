package salary

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

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
