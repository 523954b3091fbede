package post_http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	ports "likeme-post-service/internal/domain/ports/output"
)

type PostLiker interface {
	LikePost(ctx context.Context, id int64, action model.LikeAction) (*model.Post, error)
}

type LikePostHandler struct {
	postService PostLiker
	validate    *validator.Validate
	log         ports.Logger
}

func NewLikePostHandler(postService PostLiker, validate *validator.Validate, log ports.Logger) *LikePostHandler {
	return &LikePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type LikePostRequestInternal struct {
	Action string `json:"action" validate:"required,oneof=like unlike"`
}

// LikePost handles PUT /posts/{id}/like with body {"action": "like" | "unlike"}.
func (h *LikePostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req LikePostRequestInternal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("Failed to decode like request", slog.String("error", err.Error()))
		writeError(w, h.log, http.StatusBadRequest, messageInvalidAction)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, messageInvalidAction)
		return
	}

	id, err := parsePostID(r, h.validate)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, messageInvalidPostID)
		return
	}

	updated, err := h.postService.LikePost(r.Context(), id, model.LikeAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrInvalidLikeAction):
			writeError(w, h.log, http.StatusBadRequest, messageInvalidAction)
		case errors.Is(err, custom_errors.ErrPostNotFound):
			writeError(w, h.log, http.StatusNotFound, messagePostNotFound)
		default:
			writeError(w, h.log, http.StatusInternalServerError, messageLikeFailed)
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, updated)
}
