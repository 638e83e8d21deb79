package cats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/exercises/internal/cats"
	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v3"
)

const (
	paramOutput = "output"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func Command(conf config.Cats) *cli.Command {
	flags := []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    paramOutput,
			Aliases: []string{"o"},
			Usage:   "output format (available: 'text', 'json', 'yaml')",
			Value:   conf.Output,
		}),
	}

	return &cli.Command{
		Name:      "cats",
		Usage:     "Print the records of an 'id,name,age' file",
		ArgsUsage: "<path>",
		Flags:     flags,
		Before:    common.InitInputSource(flags),
		Action: func(ctx *cli.Context) error {
			location, err := common.RequireArgument(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			output := ctx.String(paramOutput)

			switch output {
			case OutputText, OutputJSON, OutputYAML:
			default:
				return errors.Errorf("unknown output format '%s'", output)
			}

			err = common.MountLocation(ctx.Context, location, func(c context.Context, fs afero.Fs, path string) error {
				records := cats.Read(c, fs, path, cats.WithLogger(slog.Default()))

				if err := write(ctx.App.Writer, output, records); err != nil {
					return errors.WithStack(err)
				}

				return nil
			})
			if err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func write(w io.Writer, output string, records []cats.Cat) error {
	switch output {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(records); err != nil {
			return errors.WithStack(err)
		}

	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(records); err != nil {
			return errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

	default:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	return nil
}
