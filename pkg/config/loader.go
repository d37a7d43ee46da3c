package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load fills the provided struct from environment variables based on `env`
// field tags. The default .env file is loaded once per process before the
// first parse; a missing .env file is not an error.
//
// Example:
//
//	type UploadConfig struct {
//		BaseDir string `env:"UPLOAD_BASE_DIR" envDefault:"."`
//		MaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"0"`
//	}
//
//	var cfg UploadConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("%w: %v", ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
