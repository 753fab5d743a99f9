package http

import (
	"errors"
	"net/http"

	"github.com/nax3t/go-blog/internal/logger"
	"github.com/nax3t/go-blog/internal/service"
	"github.com/nax3t/go-blog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationFailed:      http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUnauthenticated:       http.StatusUnauthorized,
	service.ErrForbidden:             http.StatusForbidden,
	service.ErrSessionCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameTaken:   http.StatusConflict,
	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrPostNotFound:    http.StatusNotFound,
	store.ErrCommentNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError resolves err to its HTTP status and writes a plain-text error
// response. Client errors (4xx) carry the matched sentinel's message so the
// caller knows what to fix; server errors expose only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		for target, code := range errorStatusMap {
			if code == status && errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, message, status)
}
