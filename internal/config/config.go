package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger    Logger    `envPrefix:"LOGGER_"`
	Assistant Assistant `envPrefix:"ASSISTANT_"`
	Cats      Cats      `envPrefix:"CATS_"`
	Tree      Tree      `envPrefix:"TREE_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "EXERCISES_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
