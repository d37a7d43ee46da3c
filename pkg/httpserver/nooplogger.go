package httpserver

import (
	"context"
	"log/slog"
)

// noopHandler discards every record. It backs the fallback logger used when
// the server is constructed without WithLogger, which keeps lifecycle logging
// optional for embedders like the uploadd binary and the package tests.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }

func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}
