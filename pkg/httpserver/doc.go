// Package httpserver provides a lightweight wrapper around net/http adding
// graceful shutdown, configurable server timeouts, health-check handlers,
// and structured logging via slog.
//
// The core type is Server: Run blocks until the context is cancelled or an
// interrupt/TERM signal is received and then shuts the server down using
// http.Server.Shutdown with a configurable deadline. Construction is done
// through New or NewFromConfig together with Option helpers such as
// WithAddr, WithReadTimeout and WithLogger.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), slog.Default()))
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithShutdownTimeout(10*time.Second),
//	)
//
//	if err := srv.Run(context.Background(), r); err != nil {
//	    log.Fatal(err)
//	}
//
// All public errors are wrapped with the ErrStart and ErrShutdown sentinels
// so they can be inspected with errors.Is.
package httpserver
