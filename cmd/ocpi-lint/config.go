package main

import (
	"github.com/dmitrymomot/ocpi/pkg/environment"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// Config is read from the environment and an optional env file.
type Config struct {
	Env         environment.Environment `env:"OCPI_LINT_ENV" envDefault:"development"`
	LogLevel    string                  `env:"OCPI_LINT_LOG_LEVEL" envDefault:"info"`
	LogFormat   string                  `env:"OCPI_LINT_LOG_FORMAT" envDefault:"text"`
	Concurrency int                     `env:"OCPI_LINT_CONCURRENCY" envDefault:"4"`
	Strict      bool                    `env:"OCPI_LINT_STRICT" envDefault:"true"`
	Lang        string                  `env:"OCPI_LINT_LANG" envDefault:"en"`
}

func (c Config) Validate() error {
	return validator.Apply(
		validator.Between("OCPI_LINT_CONCURRENCY", c.Concurrency, 1, 256),
		validator.InList("OCPI_LINT_LOG_FORMAT", c.LogFormat, []string{"text", "json"}),
		validator.Required("OCPI_LINT_LANG", c.Lang),
	)
}
