package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/expnse/expnse-server/internal/service"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError_KnownSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"password too short", service.ErrPasswordTooShort, http.StatusBadRequest},
		{"same password", service.ErrSamePassword, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"username taken", store.ErrUsernameTaken, http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusUnauthorized},
		{"executing query", store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", service.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, statusFromError(wrapped))
}

func TestStatusFromError_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("who knows")))
}

func TestMessageFromError_ClientFacingSentinel(t *testing.T) {
	wrapped := fmt.Errorf("change password: %w", service.ErrSamePassword)
	assert.Equal(t, service.ErrSamePassword.Error(), messageFromError(wrapped))
}

func TestMessageFromError_InternalSentinelStaysGeneric(t *testing.T) {
	wrapped := fmt.Errorf("listing: %w", store.ErrExecutingQuery)
	assert.Equal(t, "internal server error", messageFromError(wrapped))
}

func TestMessageFromError_UnknownErrorStaysGeneric(t *testing.T) {
	assert.Equal(t, "internal server error", messageFromError(errors.New("secret detail")))
}
