package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/mock"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/models"
)

func newTestPostSvc(t *testing.T) (PostService, *mock.MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	return NewPostService(repo, logger.Nop()), repo
}

// ── ListPublished ─────────────────────────────────────────────────────────────

func TestPostService_ListPublished_PassesThrough(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	want := []models.Post{{ID: 1, Title: "t", Body: "b", Published: true}}
	repo.EXPECT().ListPublished(ctx).Return(want, nil)

	got, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPostService_ListPublished_NoPosts(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListPublished(ctx).Return(nil, store.ErrNoPublishedPosts)

	_, err := svc.ListPublished(ctx)
	assert.ErrorIs(t, err, store.ErrNoPublishedPosts)
}

// ── GetByID ───────────────────────────────────────────────────────────────────

func TestPostService_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		repoRes models.Post
		repoErr error
	}{
		{name: "found", repoRes: models.Post{ID: 7, Title: "t", Body: "b"}},
		{name: "not found", repoErr: store.ErrPostNotFound},
		{name: "storage failure", repoErr: errors.Join(store.ErrAcquiringConnection, errors.New("pool exhausted"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestPostSvc(t)
			ctx := context.Background()

			repo.EXPECT().GetByID(ctx, int64(7)).Return(tt.repoRes, tt.repoErr)

			got, err := svc.GetByID(ctx, 7)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.repoRes, got)
		})
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestPostService_Create_CallsInsertOnce(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	in := models.NewPost{Title: "a", Body: "b"}
	repo.EXPECT().Insert(ctx, in).Return(models.NewPost{ID: 3, Title: "a", Body: "b"}, nil).Times(1)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "b", got.Body)
	assert.Equal(t, int64(3), got.ID)
}

func TestPostService_Create_NoRetryOnFailure(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(models.NewPost{}, store.ErrConstraintViolation).Times(1)

	_, err := svc.Create(ctx, models.NewPost{Title: "a", Body: "b"})
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
}

// ── Publish / Delete ──────────────────────────────────────────────────────────

func TestPostService_Publish(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Publish(ctx, int64(1)).Return(models.Post{ID: 1, Published: true}, nil),
		repo.EXPECT().Publish(ctx, int64(2)).Return(models.Post{}, store.ErrPostNotFound),
	)

	got, err := svc.Publish(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Published)

	_, err = svc.Publish(ctx, 2)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_Delete(t *testing.T) {
	svc, repo := newTestPostSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Delete(ctx, int64(1)).Return(models.Post{ID: 1, Title: "gone"}, nil),
		repo.EXPECT().Delete(ctx, int64(1)).Return(models.Post{}, store.ErrPostNotFound),
	)

	got, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "gone", got.Title)

	_, err = svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{PostRepository: mock.NewMockPostRepository(ctrl)}

	services := NewServices(storages, logger.Nop())
	require.NotNil(t, services)
	assert.NotNil(t, services.PostService)
}
