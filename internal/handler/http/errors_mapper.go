package http

import (
	"errors"
	"net/http"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/service"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/expnse/expnse-server/internal/utils"
	"github.com/expnse/expnse-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrSamePassword:        http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrUsernameTaken:    http.StatusBadRequest,
	store.ErrUserNotFound:     http.StatusUnauthorized,
	store.ErrSettingsNotFound: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err: the text of
// the matched sentinel, never the wrapped internal detail.
func messageFromError(err error) string {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if status >= http.StatusInternalServerError {
			break
		}
		return target.Error()
	}
	return "internal server error"
}

// respondError logs the full error and writes the mapped status with a
// short JSON body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// respondBadRequest is used for transport-level failures (malformed JSON,
// missing query params) that never reach the service layer.
func respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)

	log.Error().Str("reason", message).Msg("bad request")
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusBadRequest)
}
