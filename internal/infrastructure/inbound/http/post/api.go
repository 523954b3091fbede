package post_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	post_service "likeme-post-service/internal/domain/ports/input/post"
	ports "likeme-post-service/internal/domain/ports/output"
)

type PostHTTPApi struct {
	listPostsHandler  *ListPostsHandler
	createPostHandler *CreatePostHandler
	likePostHandler   *LikePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostHTTPApi(postService post_service.Service, validate *validator.Validate, log ports.Logger) *PostHTTPApi {
	return &PostHTTPApi{
		listPostsHandler:  NewListPostsHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		likePostHandler:   NewLikePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, validate, log),
	}
}

func (a *PostHTTPApi) RegisterRoutes(r chi.Router) {
	r.Get("/posts", a.listPostsHandler.ListPosts)
	r.Post("/posts", a.createPostHandler.CreatePost)
	r.Put("/posts/{id}/like", a.likePostHandler.LikePost)
	r.Delete("/posts/{id}", a.deletePostHandler.DeletePost)
}
