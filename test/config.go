package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the integration scenario from the environment so the
// same test can run against slower CI storage.
type Config struct {
	RequestTimeout time.Duration `envconfig:"TEST_REQUEST_TIMEOUT" default:"5s"`
	BufferSize     int           `envconfig:"TEST_CONNECTION_BUFFER_SIZE" default:"64"`
}

func LoadConfig() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	return config, err
}
