package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/service"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// Each mock implements its service interface with overridable method fields,
// so a test only wires the calls it expects.

type mockAuthService struct {
	registerFn      func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createSessionFn func(ctx context.Context, user models.User) (models.Session, error)
	authenticateFn  func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, user)
	}
	return models.Session{SignedString: "stub.session.token", UserID: user.ID}, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockUserService struct {
	updateUsernameFn func(ctx context.Context, userID uuid.UUID, req models.UpdateUsernameRequest) (models.User, error)
	updatePasswordFn func(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) (models.User, error)
	deleteAccountFn  func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) UpdateUsername(ctx context.Context, userID uuid.UUID, req models.UpdateUsernameRequest) (models.User, error) {
	return m.updateUsernameFn(ctx, userID, req)
}

func (m *mockUserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req models.UpdatePasswordRequest) (models.User, error) {
	return m.updatePasswordFn(ctx, userID, req)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return m.deleteAccountFn(ctx, userID)
}

type mockPostService struct {
	createPostFn func(ctx context.Context, author models.User, req models.CreatePostRequest) (models.Post, error)
	getPostFn    func(ctx context.Context, id uuid.UUID) (models.Post, error)
	listPostsFn  func(ctx context.Context) ([]models.Post, error)
	updatePostFn func(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdatePostRequest) (models.Post, error)
	deletePostFn func(ctx context.Context, actor models.User, id uuid.UUID) error
}

func (m *mockPostService) CreatePost(ctx context.Context, author models.User, req models.CreatePostRequest) (models.Post, error) {
	return m.createPostFn(ctx, author, req)
}

func (m *mockPostService) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	return m.getPostFn(ctx, id)
}

func (m *mockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return m.listPostsFn(ctx)
}

func (m *mockPostService) UpdatePost(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdatePostRequest) (models.Post, error) {
	return m.updatePostFn(ctx, actor, id, req)
}

func (m *mockPostService) DeletePost(ctx context.Context, actor models.User, id uuid.UUID) error {
	return m.deletePostFn(ctx, actor, id)
}

type mockCommentService struct {
	createCommentFn    func(ctx context.Context, author models.User, postID uuid.UUID, req models.CreateCommentRequest) (models.Comment, error)
	listPostCommentsFn func(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	updateCommentFn    func(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdateCommentRequest) (models.Comment, error)
	deleteCommentFn    func(ctx context.Context, actor models.User, id uuid.UUID) error
}

func (m *mockCommentService) CreateComment(ctx context.Context, author models.User, postID uuid.UUID, req models.CreateCommentRequest) (models.Comment, error) {
	return m.createCommentFn(ctx, author, postID, req)
}

func (m *mockCommentService) ListPostComments(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	return m.listPostCommentsFn(ctx, postID)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, actor models.User, id uuid.UUID, req models.UpdateCommentRequest) (models.Comment, error) {
	return m.updateCommentFn(ctx, actor, id, req)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, actor models.User, id uuid.UUID) error {
	return m.deleteCommentFn(ctx, actor, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}

// errStorageDown stands in for an unmapped infrastructure failure.
var errStorageDown = errors.New("storage is down")

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withUser injects an authenticated user into the request context the way
// requireAuth does.
func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserCtxKey, user))
}

// withPathParam attaches a chi route parameter to the request context so a
// handler can be called directly, without routing.
func withPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sessionCookie returns the session cookie set on the recorded response,
// or nil if none was set.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == models.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(&service.Services{})
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
