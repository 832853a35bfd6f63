// Package config loads application configuration from environment variables.
//
// Values are read from the process environment after an optional set of
// `.env` files has been applied with github.com/joho/godotenv, and parsed into
// tagged structs with github.com/caarlos0/env/v11:
//
//	type Config struct {
//		SubmitDelay time.Duration `env:"SHOWCASE_SUBMIT_DELAY" envDefault:"1s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The default `.env` in the working directory is applied once per process and
// its absence is not an error. Variables already set in the environment win
// over values from files.
package config
