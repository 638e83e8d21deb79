package main

import (
	"log/slog"
	"os"

	"github.com/bornholm/exercises/internal/command"
	"github.com/bornholm/exercises/internal/command/assistant"
	"github.com/bornholm/exercises/internal/command/cats"
	"github.com/bornholm/exercises/internal/command/salary"
	"github.com/bornholm/exercises/internal/command/tree"
	"github.com/bornholm/exercises/internal/config"
	"github.com/pkg/errors"
)

func main() {
	conf, err := config.Parse()
	if err != nil {
		slog.Error("could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	command.Main(
		conf,
		"exercises", "a set of small file and console utilities",
		assistant.Command(conf.Assistant),
		cats.Command(conf.Cats),
		salary.Command(),
		tree.Command(conf.Tree),
	)
}
