// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from the default `.env` file in the current working
//     directory when present.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the application cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type UploadConfig struct {
//	    BaseDir string `env:"UPLOAD_BASE_DIR" envDefault:"."`
//	    Dir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
//	    BaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/"`
//	}
//
// Then populate it:
//
//	var cfg UploadConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors are wrapped with the package sentinels so callers can branch with
// errors.Is.
package config
