package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/exercises/internal/build"
	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/bornholm/exercises/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(conf *config.Config, name string, usage string, commands ...*cli.Command) {
	app := NewApp(conf, name, usage, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func NewApp(conf *config.Config, name string, usage string, commands ...*cli.Command) *cli.App {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			slogLevel, err := parseLogLevel(ctx.String("log-level"))
			if err != nil {
				return errors.WithStack(err)
			}

			logger := slog.New(log.ContextHandler{
				Handler: slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level:     slogLevel,
					AddSource: ctx.Bool("debug"),
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    common.ParamConfig,
				EnvVars: []string{"EXERCISES_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to use",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"EXERCISES_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"EXERCISES_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Set logging level (available: 'debug', 'info', 'warn', 'error')",
				Value: conf.Logger.Level,
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level '%s'", level)
	}
}
