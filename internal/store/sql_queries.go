package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-posts/models"
)

const (
	postsTable = "posts"

	// listPublishedLimit caps the number of rows returned by ListPublished.
	listPublishedLimit = 5
)

const returningPostColumns = "RETURNING id, title, body, published"

var postColumns = []string{"id", "title", "body", "published"}

func buildListPublishedQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"published": true}).
		OrderBy("id").
		Limit(listPublishedLimit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetPostByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(postColumns...).
		From(postsTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.NewPost) (string, []any, error) {
	query, args, err := b.
		Insert(postsTable).
		Columns("title", "body", "published").
		Values(post.Title, post.Body, false).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildPublishPostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Update(postsTable).
		Set("published", true).
		Where(sq.Eq{"id": id}).
		Suffix(returningPostColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(postsTable).
		Where(sq.Eq{"id": id}).
		Suffix(returningPostColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
