package post_repository

import (
	"context"

	model "likeme-post-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	List(ctx context.Context) ([]*model.Post, error)
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	// AdjustLikes applies delta to the counter in one step and never lets it drop below zero.
	AdjustLikes(ctx context.Context, id int64, delta int64) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
