// Package config loads typed configuration from the environment.
//
// Structs are described with github.com/caarlos0/env/v11 tags. Load parses
// a struct type once and serves later calls for the same type from a cache;
// ResetCache drops it, which tests need after t.Setenv. The .env file in the
// working directory is read through github.com/joho/godotenv before the
// first parse, and LoadEnv reads additional files explicitly. Variables that
// are already set always win over file values.
//
//	type Config struct {
//		Concurrency int  `env:"OCPI_LINT_CONCURRENCY" envDefault:"4"`
//		Strict      bool `env:"OCPI_LINT_STRICT" envDefault:"true"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
