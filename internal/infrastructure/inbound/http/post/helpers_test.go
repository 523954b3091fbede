package post_http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	post_http "likeme-post-service/internal/infrastructure/inbound/http/post"
	"likeme-post-service/internal/infrastructure/logger"
	mockpost "likeme-post-service/mocks/post"
)

func newTestRouter(t *testing.T) (chi.Router, *mockpost.Service) {
	t.Helper()
	mockPostService := mockpost.NewService(t)
	api := post_http.NewPostHTTPApi(mockPostService, validator.New(), logger.New("test"))

	r := chi.NewRouter()
	api.RegisterRoutes(r)
	return r, mockPostService
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
