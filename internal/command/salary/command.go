package salary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/salary"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "salary",
		Usage:     "Print the total and average of a 'name,salary' file",
		ArgsUsage: "<path>",
		Action: func(ctx *cli.Context) error {
			location, err := common.RequireArgument(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			err = common.MountLocation(ctx.Context, location, func(c context.Context, fs afero.Fs, path string) error {
				total, average := salary.Total(c, fs, path, salary.WithLogger(slog.Default()))

				if _, err := fmt.Fprintf(ctx.App.Writer, "Total salary: %.2f, Average salary: %.2f\n", total, average); err != nil {
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
