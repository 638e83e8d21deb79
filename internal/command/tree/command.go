package tree

import (
	"context"
	"log/slog"

	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/bornholm/exercises/internal/tree"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramColor = "color"
	paramSizes = "sizes"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

func Command(conf config.Tree) *cli.Command {
	flags := []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramColor,
			Usage: "colorize the output (available: 'auto', 'always', 'never')",
			Value: conf.Color,
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  paramSizes,
			Usage: "print the size of each file",
			Value: conf.Sizes,
		}),
	}

	return &cli.Command{
		Name:      "tree",
		Usage:     "Print the content of a directory as a tree",
		ArgsUsage: "<path>",
		Flags:     flags,
		Before:    common.InitInputSource(flags),
		Action: func(ctx *cli.Context) error {
			location, err := common.RequireArgument(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			colorized, err := useColor(ctx.String(paramColor))
			if err != nil {
				return errors.WithStack(err)
			}

			err = common.MountLocation(ctx.Context, location, func(c context.Context, fs afero.Fs, path string) error {
				err := tree.Print(
					c, fs, path, ctx.App.Writer,
					tree.WithColor(colorized),
					tree.WithSizes(ctx.Bool(paramSizes)),
					tree.WithLogger(slog.Default()),
				)
				if err != nil {
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

func useColor(mode string) (bool, error) {
	switch mode {
	case ColorAuto, "":
		return !color.NoColor, nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	default:
		return false, errors.Errorf("unknown color mode '%s'", mode)
	}
}
