package showcase

import "time"

// Config holds the showcase settings read from the environment.
type Config struct {
	AppName       string        `env:"APP_NAME" envDefault:"SmartForm"`
	SubmitDelay   time.Duration `env:"SHOWCASE_SUBMIT_DELAY" envDefault:"1s"`
	ResetOnSubmit bool          `env:"SHOWCASE_RESET_ON_SUBMIT" envDefault:"true"`
	BcryptCost    int           `env:"SHOWCASE_BCRYPT_COST" envDefault:"10"`
}
