package post_http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"likeme-post-service/internal/custom_errors"
	ports "likeme-post-service/internal/domain/ports/output"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

// DeletePost handles DELETE /posts/{id}.
func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r, h.validate)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, messageInvalidPostID)
		return
	}

	err = h.postService.DeletePost(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			writeError(w, h.log, http.StatusNotFound, messagePostNotFound)
		default:
			writeError(w, h.log, http.StatusInternalServerError, messageDeleteFailed)
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, messageResponse{Message: messagePostDeleted})
}
