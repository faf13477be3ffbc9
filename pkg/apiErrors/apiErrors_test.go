package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{ErrMissingRequiredData, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrUpstreamFetch, http.StatusInternalServerError},
		{ErrSinkWrite, http.StatusBadGateway},
		{ErrSyncInProgress, http.StatusConflict},
		{ErrNotFound, http.StatusNotFound},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "algo deu errado", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "algo deu errado", body["error"])
			assert.Equal(t, tt.code, body["code"])
			assert.NotContains(t, body, "details")
		})
	}
}
