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

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequestInternal struct {
	Titulo      string `json:"titulo" validate:"required"`
	Img         string `json:"img" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Likes       *int64 `json:"likes" validate:"omitempty,gte=0,lte=2147483647"`
}

// CreatePost handles POST /posts. An omitted likes field starts the counter at zero.
func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CreatePostRequestInternal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("Failed to decode create post request", slog.String("error", err.Error()))
		writeError(w, h.log, http.StatusBadRequest, messageInvalidPayload)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.log.Debug("Invalid create post request", slog.String("error", err.Error()))
		writeError(w, h.log, http.StatusBadRequest, messageInvalidPayload)
		return
	}

	dto := &model.CreatePostDTO{
		Titulo:      req.Titulo,
		Img:         req.Img,
		Descripcion: req.Descripcion,
	}
	if req.Likes != nil {
		dto.Likes = *req.Likes
	}

	created, err := h.postService.CreatePost(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostValidation):
			writeError(w, h.log, http.StatusBadRequest, messageInvalidPayload)
		default:
			writeError(w, h.log, http.StatusInternalServerError, messageCreateFailed)
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, created)
}
