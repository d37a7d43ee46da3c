// Package logger provides a thin factory around Go's slog package adding
// functional options for configuration and helper attribute constructors.
//
// The package standardises structured logging across services by exposing a
// single factory - New - that creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//
// Helper constructors such as Group, Error and Errors live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/uploadkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithProduction("uploadd"),
//	)
//	log.Info("server starting", slog.String("addr", ":8080"))
//
// NewFromConfig builds the same logger from env-driven settings:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg)
package logger
