package post_http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"likeme-post-service/internal/custom_errors"
)

type PostIDRequestInternal struct {
	ID int64 `validate:"required,gt=0"`
}

func parsePostID(r *http.Request, validate *validator.Validate) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, custom_errors.ErrInvalidPostID
	}
	if err := validate.Struct(&PostIDRequestInternal{ID: id}); err != nil {
		return 0, custom_errors.ErrInvalidPostID
	}
	return id, nil
}
