package delivery_http

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	ports "likeme-post-service/internal/domain/ports/output"
	"likeme-post-service/internal/infrastructure/inbound/http/middleware"
	post_http "likeme-post-service/internal/infrastructure/inbound/http/post"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(postAPI *post_http.PostHTTPApi, health Pinger, log ports.Logger, metrics ports.MetricsProvider) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(metrics))
	r.Use(chimw.Recoverer)

	postAPI.RegisterRoutes(r)

	r.Get("/healthz", healthz(health, log))

	return r
}
