package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/service"
	"github.com/nax3t/go-blog/internal/store"
	"github.com/nax3t/go-blog/internal/utils"
	"github.com/nax3t/go-blog/models"
)

// setSessionCookie attaches the signed session token to the response as an
// http-only cookie. The cookie expiry tracks the token expiry, so the
// browser and the token agree on when the session ends.
func setSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

// clearSessionCookie overwrites the session cookie with an already-expired
// empty one.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			log.Err(err).Msg("invalid registration data provided")
			http.Error(w, service.ErrValidationFailed.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already taken")
			http.Error(w, store.ErrUsernameTaken.Error(), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	session, err := h.services.AuthService.CreateSession(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session)
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			log.Err(err).Msg("invalid login data provided")
			http.Error(w, service.ErrValidationFailed.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("unknown username/wrong password")
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", foundUser.ID.String()).Msg("user successfully logged in")

	session, err := h.services.AuthService.CreateSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, session)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout ends the session by expiring the cookie. The token itself is not
// tracked server-side, so dropping the cookie is all there is to do; the
// route deliberately accepts requests without a valid session so that a
// client stuck with a broken cookie can always get rid of it.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
