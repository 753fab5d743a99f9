package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nax3t/go-blog/internal/service"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/models"
)

func newHandlerWithComments(comments service.CommentService) *Handler {
	return newTestHandler(&service.Services{CommentService: comments})
}

func TestCreateCommentHandler_Created(t *testing.T) {
	postID := uuid.New()
	comments := &mockCommentService{
		createCommentFn: func(_ context.Context, author models.User, id uuid.UUID, req models.CreateCommentRequest) (models.Comment, error) {
			assert.Equal(t, testAuthor, author)
			assert.Equal(t, postID, id)
			return models.Comment{ID: uuid.New(), Content: req.Content, PostID: id, AuthorUsername: author.Username}, nil
		},
	}
	h := newHandlerWithComments(comments)

	body := jsonBody(t, models.CreateCommentRequest{Content: "nice post"})
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/posts/"+postID.String()+"/comments", strings.NewReader(body)), testAuthor)
	req = withPathParam(req, "postID", postID.String())
	rec := httptest.NewRecorder()

	h.createComment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "nice post")
}

func TestCreateCommentHandler_MissingPost(t *testing.T) {
	postID := uuid.New()
	comments := &mockCommentService{
		createCommentFn: func(_ context.Context, _ models.User, _ uuid.UUID, _ models.CreateCommentRequest) (models.Comment, error) {
			return models.Comment{}, store.ErrPostNotFound
		},
	}
	h := newHandlerWithComments(comments)

	body := jsonBody(t, models.CreateCommentRequest{Content: "orphan"})
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/posts/"+postID.String()+"/comments", strings.NewReader(body)), testAuthor)
	req = withPathParam(req, "postID", postID.String())
	rec := httptest.NewRecorder()

	h.createComment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPostCommentsHandler_OK(t *testing.T) {
	postID := uuid.New()
	comments := &mockCommentService{
		listPostCommentsFn: func(_ context.Context, id uuid.UUID) ([]models.Comment, error) {
			assert.Equal(t, postID, id)
			return []models.Comment{
				{ID: uuid.New(), Content: "first", PostID: id},
				{ID: uuid.New(), Content: "second", PostID: id},
			}, nil
		},
	}
	h := newHandlerWithComments(comments)

	req := withPathParam(httptest.NewRequest(http.MethodGet, "/api/posts/"+postID.String()+"/comments", nil), "postID", postID.String())
	rec := httptest.NewRecorder()

	h.listPostComments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}

func TestListPostCommentsHandler_EmptyIsJSONArray(t *testing.T) {
	postID := uuid.New()
	comments := &mockCommentService{
		listPostCommentsFn: func(_ context.Context, _ uuid.UUID) ([]models.Comment, error) {
			return nil, nil
		},
	}
	h := newHandlerWithComments(comments)

	req := withPathParam(httptest.NewRequest(http.MethodGet, "/api/posts/"+postID.String()+"/comments", nil), "postID", postID.String())
	rec := httptest.NewRecorder()

	h.listPostComments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateCommentHandler_Forbidden(t *testing.T) {
	commentID := uuid.New()
	comments := &mockCommentService{
		updateCommentFn: func(_ context.Context, _ models.User, _ uuid.UUID, _ models.UpdateCommentRequest) (models.Comment, error) {
			return models.Comment{}, service.ErrForbidden
		},
	}
	h := newHandlerWithComments(comments)

	body := jsonBody(t, models.UpdateCommentRequest{Content: "hijacked"})
	req := withUser(httptest.NewRequest(http.MethodPatch, "/api/comments/"+commentID.String(), strings.NewReader(body)), testAuthor)
	req = withPathParam(req, "commentID", commentID.String())
	rec := httptest.NewRecorder()

	h.updateComment(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateCommentHandler_OK(t *testing.T) {
	commentID := uuid.New()
	comments := &mockCommentService{
		updateCommentFn: func(_ context.Context, actor models.User, id uuid.UUID, req models.UpdateCommentRequest) (models.Comment, error) {
			assert.Equal(t, testAuthor, actor)
			assert.Equal(t, commentID, id)
			return models.Comment{ID: id, Content: req.Content}, nil
		},
	}
	h := newHandlerWithComments(comments)

	body := jsonBody(t, models.UpdateCommentRequest{Content: "edited"})
	req := withUser(httptest.NewRequest(http.MethodPatch, "/api/comments/"+commentID.String(), strings.NewReader(body)), testAuthor)
	req = withPathParam(req, "commentID", commentID.String())
	rec := httptest.NewRecorder()

	h.updateComment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "edited")
}

func TestDeleteCommentHandler_NoContent(t *testing.T) {
	commentID := uuid.New()
	comments := &mockCommentService{
		deleteCommentFn: func(_ context.Context, actor models.User, id uuid.UUID) error {
			assert.Equal(t, commentID, id)
			return nil
		},
	}
	h := newHandlerWithComments(comments)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/comments/"+commentID.String(), nil), testAuthor)
	req = withPathParam(req, "commentID", commentID.String())
	rec := httptest.NewRecorder()

	h.deleteComment(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteCommentHandler_MalformedID(t *testing.T) {
	h := newHandlerWithComments(&mockCommentService{})

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/comments/abc", nil), testAuthor)
	req = withPathParam(req, "commentID", "abc")
	rec := httptest.NewRecorder()

	h.deleteComment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
