package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	ports "likeme-post-service/internal/domain/ports/output"
)

type PostRepository struct {
	log    ports.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log ports.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// mirrors the posts table: CHECK (likes >= 0) on an INT column
	if post.Likes < 0 || post.Likes > model.MaxLikes {
		p.log.Debug("Rejecting post with out of range likes", slog.Int64("likes", post.Likes))
		return nil, custom_errors.ErrDatabaseQuery
	}

	newPost := &model.Post{
		ID:          p.nextID,
		Titulo:      post.Titulo,
		Img:         post.Img,
		Descripcion: post.Descripcion,
		Likes:       post.Likes,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) AdjustLikes(ctx context.Context, id int64, delta int64) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id during AdjustLikes", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	post.Likes = clampLikes(post.Likes, delta)

	result := *post
	return &result, nil
}

// clampLikes applies delta without wrapping and keeps the result in [0, MaxLikes].
func clampLikes(likes, delta int64) int64 {
	switch {
	case delta > 0 && likes > model.MaxLikes-delta:
		return model.MaxLikes
	case delta < 0 && likes+delta < 0:
		return 0
	default:
		return min(likes+delta, model.MaxLikes)
	}
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) Ping(ctx context.Context) error {
	return nil
}
