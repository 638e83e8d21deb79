package assistant

import "log/slog"

const DefaultPrompt = "> "

type Options struct {
	Prompt string
	Logger *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Prompt: DefaultPrompt,
		Logger: slog.Default(),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithPrompt(prompt string) OptionFunc {
	return func(opts *Options) {
		opts.Prompt = prompt
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
