package httpserver

import "errors"

// Sentinel errors returned from Run. Callers such as the uploadd entrypoint
// match them with errors.Is to decide the exit code.
var (
	// ErrStart is wrapped around the listener failure when the server
	// cannot bind or serve its address.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown is wrapped around the shutdown failure when in-flight
	// requests do not drain within the configured timeout.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
