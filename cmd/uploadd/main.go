// Command uploadd runs a minimal upload server: one POST /upload route that
// feeds the multipart request through the validation-and-commit pipeline and
// renders the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uploadkit/pkg/config"
	"github.com/dmitrymomot/uploadkit/pkg/httpserver"
	"github.com/dmitrymomot/uploadkit/pkg/logger"
	"github.com/dmitrymomot/uploadkit/upload"
)

type appConfig struct {
	Upload upload.Config
	HTTP   httpserver.Config
	Log    logger.Config
	// Field is the multipart field name uploads arrive under.
	Field string `env:"UPLOAD_FIELD" envDefault:"file"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log, logger.WithAttr(slog.String("service", "uploadd")))
	logger.SetAsDefault(log)

	store, err := upload.New(cfg.Upload)
	if err != nil {
		log.Error("failed to initialize upload store", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
	r.Post("/upload", uploadHandler(store, cfg.Field, log))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func uploadHandler(store *upload.Store, field string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := upload.FilesFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer files.Cleanup()

		res, err := store.Upload(files).Field(field).Commit(r.Context())
		if err != nil {
			// Infrastructure fault, not bad input: alert operators.
			log.ErrorContext(r.Context(), "upload commit failed", logger.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if res.Err {
			status = http.StatusUnprocessableEntity
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			log.ErrorContext(r.Context(), "failed to encode response", logger.Error(err))
		}
	}
}
