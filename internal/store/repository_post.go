package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

// postRepository is the SQL implementation of [PostRepository] shared by the
// PostgreSQL and SQLite connections. Dialect differences live in [DB].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database interactions are traced with the request's trace id.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPublished returns up to five published posts ordered by id.
// An empty result set is reported as [ErrNoPublishedPosts].
func (p *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPublishedQuery(p.builder)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPublished").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPublished").Msg("failed to execute query for published posts")
		return nil, p.wrapError(err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, listPublishedLimit)
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(&post.ID, &post.Title, &post.Body, &post.Published); err != nil {
			log.Err(err).Str("func", "postRepository.ListPublished").Int("row", len(posts)).Msg("failed to scan post row")
			return nil, p.wrapScanError(err, ErrScanningRows)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPublished").Msg("error iterating over post rows")
		return nil, p.wrapScanError(err, ErrScanningRows)
	}

	if len(posts) == 0 {
		return nil, ErrNoPublishedPosts
	}

	return posts, nil
}

// GetByID returns the post with the given id.
func (p *postRepository) GetByID(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostByIDQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetByID").Int64("id", id).Msg("failed to create query")
		return models.Post{}, err
	}

	return p.queryPost(ctx, "postRepository.GetByID", id, query, args)
}

// Insert stores post with published = false and returns it with the
// generated ID filled in.
func (p *postRepository) Insert(ctx context.Context, post models.NewPost) (models.NewPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.Insert").Msg("failed to create query")
		return models.NewPost{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.Insert").Msg("failed to insert post")
		return models.NewPost{}, p.wrapError(err)
	}

	if err = row.Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "postRepository.Insert").Msg("failed to scan generated post id")
		return models.NewPost{}, p.wrapScanError(err, ErrScanningRow)
	}

	log.Debug().Str("func", "postRepository.Insert").Int64("id", post.ID).Msg("post created")
	return post, nil
}

// Publish marks the post as published and returns the updated row.
func (p *postRepository) Publish(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPublishPostQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.Publish").Int64("id", id).Msg("failed to create query")
		return models.Post{}, err
	}

	return p.queryPost(ctx, "postRepository.Publish", id, query, args)
}

// Delete removes the post and returns the row as it was before removal.
func (p *postRepository) Delete(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "postRepository.Delete").Int64("id", id).Msg("failed to create query")
		return models.Post{}, err
	}

	return p.queryPost(ctx, "postRepository.Delete", id, query, args)
}

// queryPost runs a statement yielding at most one post row.
// sql.ErrNoRows becomes ErrPostNotFound.
func (p *postRepository) queryPost(ctx context.Context, funcName string, id int64, query string, args []any) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to execute query")
		return models.Post{}, p.wrapError(err)
	}

	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Body, &post.Published)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("failed to scan post row")
		return models.Post{}, p.wrapScanError(err, ErrScanningRow)
	}

	return post, nil
}
