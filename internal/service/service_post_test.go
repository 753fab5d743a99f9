package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/models"
)

// ─────────────────────────────────────────────
// Mock: store.PostRepository
// ─────────────────────────────────────────────

type mockPostRepository struct {
	createPostFn func(ctx context.Context, post models.Post) (models.Post, error)
	getPostFn    func(ctx context.Context, id uuid.UUID) (models.Post, error)
	listPostsFn  func(ctx context.Context) ([]models.Post, error)
	updatePostFn func(ctx context.Context, update models.PostUpdate) (models.Post, error)
	deletePostFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if m.createPostFn != nil {
		return m.createPostFn(ctx, post)
	}
	return post, nil
}

func (m *mockPostRepository) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	if m.getPostFn != nil {
		return m.getPostFn(ctx, id)
	}
	return models.Post{}, store.ErrPostNotFound
}

func (m *mockPostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	if m.updatePostFn != nil {
		return m.updatePostFn(ctx, update)
	}
	return models.Post{}, store.ErrPostNotFound
}

func (m *mockPostRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	if m.deletePostFn != nil {
		return m.deletePostFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

var (
	alice = models.User{ID: uuid.New(), Username: "alice"}
	bob   = models.User{ID: uuid.New(), Username: "bob"}
)

func alicePost() models.Post {
	return models.Post{
		ID:             uuid.New(),
		Title:          "alice post",
		Content:        "written by alice",
		AuthorID:       alice.ID,
		AuthorUsername: alice.Username,
	}
}

func newTestPostService(repo *mockPostRepository) PostService {
	return NewPostService(repo, logger.Nop())
}

// ─────────────────────────────────────────────
// CreatePost
// ─────────────────────────────────────────────

func TestCreatePost_Success(t *testing.T) {
	var persisted models.Post
	repo := &mockPostRepository{
		createPostFn: func(_ context.Context, post models.Post) (models.Post, error) {
			persisted = post
			return post, nil
		},
	}
	svc := newTestPostService(repo)

	created, err := svc.CreatePost(context.Background(), alice, models.CreatePostRequest{
		Title:   "hello",
		Content: "first post",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, alice.ID, persisted.AuthorID)
	assert.Equal(t, "alice", persisted.AuthorUsername)
	assert.False(t, persisted.CreatedAt.IsZero())
	assert.Equal(t, persisted.CreatedAt, persisted.UpdatedAt)
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{})

	_, err := svc.CreatePost(context.Background(), alice, models.CreatePostRequest{
		Title:   "",
		Content: "body",
	})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreatePost_TitleTooLong(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{})

	title := make([]byte, 101)
	for i := range title {
		title[i] = 'a'
	}

	_, err := svc.CreatePost(context.Background(), alice, models.CreatePostRequest{
		Title:   string(title),
		Content: "body",
	})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{})

	_, err := svc.CreatePost(context.Background(), alice, models.CreatePostRequest{
		Title:   "hello",
		Content: "",
	})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ─────────────────────────────────────────────
// GetPost / ListPosts
// ─────────────────────────────────────────────

func TestGetPost_NotFound(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{})

	_, err := svc.GetPost(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestListPosts_Delegates(t *testing.T) {
	posts := []models.Post{alicePost(), alicePost()}
	repo := &mockPostRepository{
		listPostsFn: func(_ context.Context) ([]models.Post, error) {
			return posts, nil
		},
	}
	svc := newTestPostService(repo)

	got, err := svc.ListPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

// ─────────────────────────────────────────────
// UpdatePost ownership
// ─────────────────────────────────────────────

func TestUpdatePost_OwnerSucceeds(t *testing.T) {
	existing := alicePost()
	title := "renamed"
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, id uuid.UUID) (models.Post, error) {
			assert.Equal(t, existing.ID, id)
			return existing, nil
		},
		updatePostFn: func(_ context.Context, update models.PostUpdate) (models.Post, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "renamed", *update.Title)
			assert.Nil(t, update.Content)
			updated := existing
			updated.Title = *update.Title
			return updated, nil
		},
	}
	svc := newTestPostService(repo)

	updated, err := svc.UpdatePost(context.Background(), alice, existing.ID, models.UpdatePostRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, existing.Content, updated.Content)
}

func TestUpdatePost_NonOwnerForbidden(t *testing.T) {
	existing := alicePost()
	title := "hijacked"
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, _ uuid.UUID) (models.Post, error) {
			return existing, nil
		},
		updatePostFn: func(_ context.Context, _ models.PostUpdate) (models.Post, error) {
			t.Fatal("the store must not be touched on an ownership violation")
			return models.Post{}, nil
		},
	}
	svc := newTestPostService(repo)

	_, err := svc.UpdatePost(context.Background(), bob, existing.ID, models.UpdatePostRequest{Title: &title})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdatePost_MissingPost(t *testing.T) {
	title := "whatever"
	svc := newTestPostService(&mockPostRepository{})

	_, err := svc.UpdatePost(context.Background(), bob, uuid.New(), models.UpdatePostRequest{Title: &title})

	// a missing post is not-found even for a non-owner
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestUpdatePost_NoFields(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{
		getPostFn: func(_ context.Context, _ uuid.UUID) (models.Post, error) {
			t.Fatal("validation must fail before any lookup")
			return models.Post{}, nil
		},
	})

	_, err := svc.UpdatePost(context.Background(), alice, uuid.New(), models.UpdatePostRequest{})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ─────────────────────────────────────────────
// DeletePost ownership
// ─────────────────────────────────────────────

func TestDeletePost_OwnerSucceeds(t *testing.T) {
	existing := alicePost()
	deleted := false
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, _ uuid.UUID) (models.Post, error) {
			return existing, nil
		},
		deletePostFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, existing.ID, id)
			deleted = true
			return nil
		},
	}
	svc := newTestPostService(repo)

	err := svc.DeletePost(context.Background(), alice, existing.ID)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeletePost_NonOwnerForbidden(t *testing.T) {
	existing := alicePost()
	repo := &mockPostRepository{
		getPostFn: func(_ context.Context, _ uuid.UUID) (models.Post, error) {
			return existing, nil
		},
		deletePostFn: func(_ context.Context, _ uuid.UUID) error {
			t.Fatal("the store must not be touched on an ownership violation")
			return nil
		},
	}
	svc := newTestPostService(repo)

	err := svc.DeletePost(context.Background(), bob, existing.ID)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeletePost_MissingPost(t *testing.T) {
	svc := newTestPostService(&mockPostRepository{})

	err := svc.DeletePost(context.Background(), alice, uuid.New())

	assert.ErrorIs(t, err, store.ErrPostNotFound)
}
