package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

func newSQLitePostRepo(t *testing.T) PostRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewPostRepository(db, logger.Nop())
}

func TestSQLitePostRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newSQLitePostRepo(t)

	created, err := repo.Insert(ctx, models.NewPost{Title: "a", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", created.Title)
	assert.Equal(t, "b", created.Body)
	require.Positive(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: created.ID, Title: "a", Body: "b", Published: false}, got)

	published, err := repo.Publish(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)

	list, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, got, list[0])

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSQLitePostRepository_MissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := newSQLitePostRepo(t)

	_, err := repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = repo.Publish(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = repo.Delete(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSQLitePostRepository_ListPublished(t *testing.T) {
	ctx := context.Background()
	repo := newSQLitePostRepo(t)

	_, err := repo.ListPublished(ctx)
	assert.ErrorIs(t, err, ErrNoPublishedPosts)

	// unpublished rows are never listed
	draft, err := repo.Insert(ctx, models.NewPost{Title: "draft", Body: "draft"})
	require.NoError(t, err)

	_, err = repo.ListPublished(ctx)
	assert.ErrorIs(t, err, ErrNoPublishedPosts)

	for i := 0; i < 7; i++ {
		p, err := repo.Insert(ctx, models.NewPost{Title: "t", Body: "b"})
		require.NoError(t, err)
		_, err = repo.Publish(ctx, p.ID)
		require.NoError(t, err)
	}

	list, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	for _, p := range list {
		assert.True(t, p.Published)
		assert.NotEqual(t, draft.ID, p.ID)
	}
}
