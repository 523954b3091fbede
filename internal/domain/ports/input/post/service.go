package post_service

import (
	"context"

	model "likeme-post-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	LikePost(ctx context.Context, id int64, action model.LikeAction) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
