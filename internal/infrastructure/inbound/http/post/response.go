package post_http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	ports "likeme-post-service/internal/domain/ports/output"
)

const maxBodyBytes = 1 << 20

const (
	messageInvalidPostID  = "ID de post no válido"
	messagePostNotFound   = "Post no encontrado"
	messageInvalidAction  = "Acción no válida"
	messageInvalidPayload = "Invalid post payload"
	messageListFailed     = "Failed to retrieve posts"
	messageCreateFailed   = "Failed to create new post"
	messageLikeFailed     = "Error al actualizar los likes"
	messageDeleteFailed   = "Error al eliminar el post"
	messagePostDeleted    = "Post eliminado correctamente"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, log ports.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, log ports.Logger, status int, message string) {
	writeJSON(w, log, status, errorResponse{Error: message})
}
