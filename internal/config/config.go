package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	Port               string `envconfig:"PORT" default:"5000"`
	Environment        string `envconfig:"ENV" default:"development"`

	// EnableGlobalErrorLogging controls whether unhandled errors reaching
	// the 500 path are logged with their details.
	EnableGlobalErrorLogging bool `envconfig:"ENABLE_GLOBAL_ERROR_LOGGING" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
