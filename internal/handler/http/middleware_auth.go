package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/service"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// requireAuth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie named [models.SessionCookieName], resolves its
// value to an account via [service.AuthService.Authenticate], and on success
// stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The session cookie is absent ([ErrMissingSessionCookie]).
//   - The cookie value fails verification for any reason: forged or expired
//     token, wrong issuer, malformed subject, or an account that no longer
//     exists ([service.ErrUnauthenticated]).
//
// A rejected session cookie is also cleared, so a browser holding a stale
// or forged cookie stops resending it.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(models.SessionCookieName)
		if err != nil {
			log.Debug().Err(ErrMissingSessionCookie).Send()
			http.Error(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				clearSessionCookie(w)
			}
			writeError(w, r, err)
			return
		}

		// Store the resolved account in the context so that downstream
		// handlers can retrieve it without re-verifying the cookie.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser fetches the authenticated account placed in the context by
// requireAuth. A missing value means the handler was wired without the
// middleware; the request is rejected with 401 and ok is false.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.User{}, false
	}

	return user, true
}
