package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid code", service.ErrInvalidTOTPCode, http.StatusBadRequest, "invalid code"},
		{"already enabled", service.ErrMFAAlreadyEnabled, http.StatusConflict, "2FA already enabled"},
		{"duplicate username", store.ErrAlreadyExists, http.StatusConflict, "username already taken"},
		{"not found", store.ErrNotFound, http.StatusNotFound, "not found"},
		{"store unreachable", fmt.Errorf("login: %w", store.ErrUnavailable), http.StatusServiceUnavailable, "service unavailable"},
		{"unknown approval item", service.ErrUnknownApprovalItem, http.StatusBadRequest, "unknown item type"},
		{"unmapped", fmt.Errorf("boom"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			writeServiceError(context.Background(), rec, tc.err)

			require.Equal(t, tc.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.wantError, body["error"])
		})
	}
}
