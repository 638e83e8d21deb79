package assistant

import (
	"log/slog"

	"github.com/bornholm/exercises/internal/assistant"
	"github.com/bornholm/exercises/internal/command/common"
	"github.com/bornholm/exercises/internal/config"
	"github.com/bornholm/exercises/internal/contact"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramPrompt   = "prompt"
	paramContacts = "contacts"
)

func Command(conf config.Assistant) *cli.Command {
	flags := []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramPrompt,
			Usage: "the prompt written before each command",
			Value: conf.Prompt,
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramContacts,
			Usage: "a yaml file used to load the contacts on start and save them on exit",
			Value: conf.ContactsFile,
		}),
	}

	return &cli.Command{
		Name:   "assistant",
		Usage:  "Start an interactive contact assistant",
		Flags:  flags,
		Before: common.InitInputSource(flags),
		Action: func(ctx *cli.Context) error {
			fs := afero.NewOsFs()
			contactsFile := ctx.String(paramContacts)

			book := contact.NewBook()

			if contactsFile != "" {
				loaded, err := contact.Load(fs, contactsFile)
				if err != nil {
					return errors.Wrapf(err, "could not load contacts from '%s'", contactsFile)
				}

				slog.DebugContext(ctx.Context, "contacts loaded", slog.String("file", contactsFile), slog.Int("total", loaded.Len()))

				book = loaded
			}

			session := assistant.NewSession(
				book,
				assistant.WithPrompt(ctx.String(paramPrompt)),
				assistant.WithLogger(slog.Default()),
			)

			if err := session.Run(ctx.Context, ctx.App.Reader, ctx.App.Writer); err != nil {
				return errors.WithStack(err)
			}

			if contactsFile == "" {
				return nil
			}

			if err := contact.Save(fs, contactsFile, session.Book()); err != nil {
				return errors.Wrapf(err, "could not save contacts to '%s'", contactsFile)
			}

			slog.DebugContext(ctx.Context, "contacts saved", slog.String("file", contactsFile), slog.Int("total", session.Book().Len()))

			return nil
		},
	}
}
