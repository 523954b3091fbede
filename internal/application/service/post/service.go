package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	ports "likeme-post-service/internal/domain/ports/output"
	post_repository "likeme-post-service/internal/domain/ports/output/post"
)

type PostService struct {
	postRepo post_repository.Repository
	validate *validator.Validate
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		validate: validate,
		log:      log,
		metrics:  metrics,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if err := s.validate.Struct(post); err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Debug("Post validation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrPostValidation, err)
	}

	created, err := s.postRepo.Create(ctx, &model.Post{
		Titulo:      post.Titulo,
		Img:         post.Img,
		Descripcion: post.Descripcion,
		Likes:       post.Likes,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.Int64("id", created.ID))
	return created, nil
}

// LikePost applies a like or unlike to the post. Invalid actions are rejected
// before the store is touched.
func (s *PostService) LikePost(ctx context.Context, id int64, action model.LikeAction) (*model.Post, error) {
	if !action.Valid() {
		s.metrics.IncrementPostOperations("like", false)
		s.log.Debug("Invalid like action", slog.String("action", string(action)), slog.Int64("id", id))
		return nil, custom_errors.ErrInvalidLikeAction
	}

	updated, err := s.postRepo.AdjustLikes(ctx, id, action.Delta())
	if err != nil {
		s.metrics.IncrementPostOperations("like", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
		default:
			s.log.Error("Failed to adjust likes",
				slog.String("error", err.Error()),
				slog.Int64("id", id),
				slog.String("action", string(action)))
		}
		return nil, err
	}

	s.metrics.IncrementPostOperations("like", true)
	s.metrics.IncrementLikeAdjustments(string(action))
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
		default:
			s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		}
		return err
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.Int64("id", id))
	return nil
}

func (s *PostService) Ping(ctx context.Context) error {
	return s.postRepo.Ping(ctx)
}
