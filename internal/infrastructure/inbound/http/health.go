package delivery_http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	ports "likeme-post-service/internal/domain/ports/output"
)

type healthResponse struct {
	Status string `json:"status"`
}

func healthz(health Pinger, log ports.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, healthResponse{Status: "ok"}
		if err := health.Ping(r.Context()); err != nil {
			log.Warn("Health check failed", slog.String("error", err.Error()))
			status, body = http.StatusServiceUnavailable, healthResponse{Status: "unavailable"}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error("Failed to encode health response", slog.String("error", err.Error()))
		}
	}
}
