package post_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"likeme-post-service/internal/custom_errors"
	model "likeme-post-service/internal/domain/models"
	ports "likeme-post-service/internal/domain/ports/output"
	"likeme-post-service/internal/infrastructure/outbound/repository/postgres/db"
	"likeme-post-service/internal/infrastructure/outbound/repository/postgres/tableinfo"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var returningPost = "RETURNING " + strings.Join(tableinfo.PostColumns, ", ")

var adjustLikesExpr = fmt.Sprintf("LEAST(GREATEST(%s::BIGINT + ?, 0), %d)", tableinfo.PostLikesColumn, model.MaxLikes)

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) buildFailed(queryType string, start time.Time, msg string, err error, attrs ...any) error {
	p.observe(queryType, start, false)
	p.log.Error(msg, append(attrs, slog.String("error", err.Error()))...)
	return fmt.Errorf("%w: %v", custom_errors.ErrBuildingQuery, err)
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Titulo,
		&post.Img,
		&post.Descripcion,
		&post.Likes,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	p.log.Debug("Listing posts")

	query, args, err := psql.
		Select(tableinfo.PostColumns...).
		From(tableinfo.PostsTableName).
		ToSql()
	if err != nil {
		return nil, p.buildFailed("post_list", start, "Error building list query", err)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.observe("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list", start, true)
	p.log.Debug("Successfully listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("titulo", post.Titulo))

	query, args, err := psql.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTituloColumn,
			tableinfo.PostImgColumn,
			tableinfo.PostDescripcionColumn,
			tableinfo.PostLikesColumn,
		).
		Values(post.Titulo, post.Img, post.Descripcion, post.Likes).
		Suffix(returningPost).
		ToSql()
	if err != nil {
		return nil, p.buildFailed("post_create", start, "Error building create query", err)
	}

	created, err := scanPost(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		p.observe("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID))
	return created, nil
}

// AdjustLikes runs a single UPDATE so concurrent likes on the same row never
// overwrite each other. The sum is taken as BIGINT and clamped to [0, MaxLikes]
// before it is stored in the INT column.
func (p *PostRepository) AdjustLikes(ctx context.Context, id int64, delta int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Adjusting post likes", slog.Int64("id", id), slog.Int64("delta", delta))

	query, args, err := psql.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostLikesColumn, sq.Expr(adjustLikesExpr, delta)).
		Where(sq.Eq{tableinfo.PostIDColumn: id}).
		Suffix(returningPost).
		ToSql()
	if err != nil {
		return nil, p.buildFailed("post_adjust_likes", start, "Error building adjust likes query", err, slog.Int64("id", id))
	}

	updated, err := scanPost(p.db.QueryRow(ctx, query, args...))
	if err != nil {
		p.observe("post_adjust_likes", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during AdjustLikes", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error adjusting post likes", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_adjust_likes", start, true)
	p.log.Debug("Successfully adjusted post likes", slog.Int64("id", id), slog.Int64("likes", updated.Likes))
	return updated, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	p.log.Debug("Deleting post", slog.Int64("id", id))

	query, args, err := psql.
		Delete(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: id}).
		ToSql()
	if err != nil {
		return p.buildFailed("post_delete", start, "Error building delete query", err, slog.Int64("id", id))
	}

	result, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		p.observe("post_delete", start, false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	p.observe("post_delete", start, true)
	if result.RowsAffected() == 0 {
		p.log.Debug("Post not found by id during Delete", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	p.log.Debug("Successfully deleted post", slog.Int64("id", id))
	return nil
}

func (p *PostRepository) Ping(ctx context.Context) error {
	start := time.Now()
	if err := p.db.Ping(ctx); err != nil {
		p.observe("ping", start, false)
		p.log.Error("Database ping failed", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.observe("ping", start, true)
	return nil
}
