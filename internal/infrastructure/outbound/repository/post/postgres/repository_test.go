package post_repository_postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	"likeme-post-service/internal/infrastructure/logger"
	metrics "likeme-post-service/internal/infrastructure/outbound/metrics/prometheus"
	post_repository_postgres "likeme-post-service/internal/infrastructure/outbound/repository/post/postgres"
)

var postColumns = []string{"id", "titulo", "img", "descripcion", "likes"}

func setupRepo(t *testing.T) (*post_repository_postgres.PostRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := post_repository_postgres.NewPostRepository(pool, logger.New("test"), metrics.NewPrometheusMetricsProvider())
	return repo, pool
}

func TestPostRepository_List(t *testing.T) {
	listQuery := regexp.QuoteMeta("SELECT id, titulo, img, descripcion, likes FROM posts")

	t.Run("Success", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectQuery(listQuery).
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow(int64(1), "Atardecer", "https://img/1.png", "Playa", int64(3)).
				AddRow(int64(2), "Montaña", "https://img/2.png", "Nieve", int64(0)))

		posts, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, &model.Post{ID: 1, Titulo: "Atardecer", Img: "https://img/1.png", Descripcion: "Playa", Likes: 3}, posts[0])
		assert.Equal(t, int64(2), posts[1].ID)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectQuery(listQuery).WillReturnRows(pgxmock.NewRows(postColumns))

		posts, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectQuery(listQuery).WillReturnError(errors.New("connection refused"))

		posts, err := repo.List(context.Background())
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Nil(t, posts)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestPostRepository_Create(t *testing.T) {
	insertQuery := regexp.QuoteMeta("INSERT INTO posts") + ".+" + regexp.QuoteMeta("RETURNING id, titulo, img, descripcion, likes")

	t.Run("Success", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectQuery(insertQuery).
			WithArgs("T", "I", "D", int64(5)).
			WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(42), "T", "I", "D", int64(5)))

		created, err := repo.Create(context.Background(), &model.Post{Titulo: "T", Img: "I", Descripcion: "D", Likes: 5})
		require.NoError(t, err)
		assert.Equal(t, &model.Post{ID: 42, Titulo: "T", Img: "I", Descripcion: "D", Likes: 5}, created)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("ConstraintViolation", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectQuery(insertQuery).
			WithArgs("T", "I", "D", int64(1)).
			WillReturnError(errors.New("violates check constraint"))

		created, err := repo.Create(context.Background(), &model.Post{Titulo: "T", Img: "I", Descripcion: "D", Likes: 1})
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Nil(t, created)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestPostRepository_AdjustLikes(t *testing.T) {
	updateQuery := regexp.QuoteMeta("UPDATE posts SET likes = LEAST(GREATEST(likes::BIGINT + $1, 0), 2147483647) WHERE id = $2")

	tests := []struct {
		name    string
		id      int64
		delta   int64
		setup   func(pool pgxmock.PgxPoolIface)
		want    *model.Post
		wantErr error
	}{
		{
			name:  "like",
			id:    7,
			delta: 1,
			setup: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectQuery(updateQuery).
					WithArgs(int64(1), int64(7)).
					WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(7), "T", "I", "D", int64(4)))
			},
			want: &model.Post{ID: 7, Titulo: "T", Img: "I", Descripcion: "D", Likes: 4},
		},
		{
			name:  "unlike at zero stays zero",
			id:    7,
			delta: -1,
			setup: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectQuery(updateQuery).
					WithArgs(int64(-1), int64(7)).
					WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(7), "T", "I", "D", int64(0)))
			},
			want: &model.Post{ID: 7, Titulo: "T", Img: "I", Descripcion: "D", Likes: 0},
		},
		{
			name:  "like at the int column ceiling stays there",
			id:    7,
			delta: 1,
			setup: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectQuery(updateQuery).
					WithArgs(int64(1), int64(7)).
					WillReturnRows(pgxmock.NewRows(postColumns).AddRow(int64(7), "T", "I", "D", model.MaxLikes))
			},
			want: &model.Post{ID: 7, Titulo: "T", Img: "I", Descripcion: "D", Likes: model.MaxLikes},
		},
		{
			name:  "not found",
			id:    999999,
			delta: 1,
			setup: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectQuery(updateQuery).
					WithArgs(int64(1), int64(999999)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:  "database error",
			id:    7,
			delta: 1,
			setup: func(pool pgxmock.PgxPoolIface) {
				pool.ExpectQuery(updateQuery).
					WithArgs(int64(1), int64(7)).
					WillReturnError(errors.New("deadlock detected"))
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, pool := setupRepo(t)
			tt.setup(pool)

			got, err := repo.AdjustLikes(context.Background(), tt.id, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_Delete(t *testing.T) {
	deleteQuery := regexp.QuoteMeta("DELETE FROM posts WHERE id = $1")

	t.Run("Success", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 3), custom_errors.ErrPostNotFound)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnError(errors.New("connection reset"))

		assert.ErrorIs(t, repo.Delete(context.Background(), 3), custom_errors.ErrDatabaseQuery)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestPostRepository_Ping(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectPing()

		assert.NoError(t, repo.Ping(context.Background()))
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("Failure", func(t *testing.T) {
		repo, pool := setupRepo(t)
		pool.ExpectPing().WillReturnError(errors.New("down"))

		assert.ErrorIs(t, repo.Ping(context.Background()), custom_errors.ErrDatabaseQuery)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}
