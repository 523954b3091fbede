package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	ports "likeme-post-service/internal/domain/ports/output"
)

// Metrics labels requests by route pattern so /posts/1/like and /posts/2/like
// land in the same series.
func Metrics(metrics ports.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := strconv.Itoa(ww.Status())

			metrics.IncrementHTTPRequests(r.Method, route, status)
			metrics.RecordHTTPRequestDuration(r.Method, route, status, time.Since(start))
		})
	}
}
