package post_service

import (
	"context"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	"likeme-post-service/internal/infrastructure/logger"
	"likeme-post-service/internal/infrastructure/outbound/metrics/prometheus"
	"likeme-post-service/internal/infrastructure/outbound/repository/post/memory"
)

func newMemoryService(t *testing.T) *PostService {
	t.Helper()
	log := logger.New("test")
	return NewPostService(memory.NewPostRepository(log), validator.New(), log, prometheus.NewPrometheusMetricsProvider())
}

func TestPostService_CreateThenList(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D", Likes: 5})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Contains(t, posts, &model.Post{ID: created.ID, Titulo: "T", Img: "I", Descripcion: "D", Likes: 5})
}

func TestPostService_UniqueIDs(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	seen := make(map[int64]struct{})
	for i := 0; i < 20; i++ {
		created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D"})
		require.NoError(t, err)
		_, dup := seen[created.ID]
		assert.False(t, dup, "id %d assigned twice", created.ID)
		seen[created.ID] = struct{}{}
	}
}

func TestPostService_LikesNeverNegative(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D", Likes: 0})
	require.NoError(t, err)

	actions := []model.LikeAction{
		model.LikeActionUnlike,
		model.LikeActionUnlike,
		model.LikeActionLike,
		model.LikeActionUnlike,
		model.LikeActionUnlike,
		model.LikeActionLike,
		model.LikeActionLike,
		model.LikeActionUnlike,
	}
	expected := int64(0)
	for _, action := range actions {
		expected = max(expected+action.Delta(), 0)
		updated, err := svc.LikePost(ctx, created.ID, action)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated.Likes, int64(0))
		assert.Equal(t, expected, updated.Likes)
	}
}

func TestPostService_InvalidActionLeavesLikesUnchanged(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D", Likes: 3})
	require.NoError(t, err)

	_, err = svc.LikePost(ctx, created.ID, "boost")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidLikeAction)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].Likes)
}

func TestPostService_DeleteThenNotFound(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, created.ID))

	_, err = svc.LikePost(ctx, created.ID, model.LikeActionLike)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	assert.ErrorIs(t, svc.DeletePost(ctx, created.ID), custom_errors.ErrPostNotFound)
}

func TestPostService_ConcurrentLikes(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.CreatePostDTO{Titulo: "T", Img: "I", Descripcion: "D", Likes: 10})
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.LikePost(ctx, created.ID, model.LikeActionLike)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(10+n), posts[0].Likes)
}
