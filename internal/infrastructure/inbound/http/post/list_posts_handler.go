package post_http

import (
	"context"
	"net/http"

	model "likeme-post-service/internal/domain/models"
	ports "likeme-post-service/internal/domain/ports/output"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

// ListPosts handles GET /posts.
func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		writeError(w, h.log, http.StatusInternalServerError, messageListFailed)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	writeJSON(w, h.log, http.StatusOK, posts)
}
