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

func newHandlerWithAuth(auth service.AuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

var validRegister = models.RegisterRequest{
	Username: "alice",
	Password: "secret-password",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	registered := models.User{ID: uuid.New(), Username: "alice"}
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, validRegister, req)
			return registered, nil
		},
	}

	h := newHandlerWithAuth(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.NotContains(t, rec.Body.String(), "password_hash")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "a session cookie must be set on registration")
	assert.Equal(t, "stub.session.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON was passed")
}

func TestRegister_ValidationFailed(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrValidationFailed
		},
	}

	h := newHandlerWithAuth(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already taken")
}

func TestRegister_SessionCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{ID: uuid.New(), Username: "alice"}, nil
		},
		createSessionFn: func(_ context.Context, _ models.User) (models.Session, error) {
			return models.Session{}, service.ErrSessionCreationFailed
		},
	}

	h := newHandlerWithAuth(auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	found := models.User{ID: uuid.New(), Username: "alice"}
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice", req.Username)
			return found, nil
		},
	}

	h := newHandlerWithAuth(auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "a session cookie must be set on login")
	assert.Equal(t, models.SessionCookieName, cookie.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	h := newHandlerWithAuth(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
