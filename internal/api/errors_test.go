package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{"validation", &service.ValidationError{Field: "name", Message: "name is required"}, http.StatusBadRequest, "name"},
		{"malformed items", fmt.Errorf("failed: %w", &service.MalformedItemsError{Segment: "Coffee", Reason: "x"}), http.StatusUnprocessableEntity, "items"},
		{"not found", fmt.Errorf("failed to delete: %w", repository.ErrNotFound), http.StatusNotFound, ""},
		{"duplicate", service.ErrDuplicateUsername, http.StatusConflict, "username"},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"unavailable", fmt.Errorf("failed to list: %w", repository.ErrStoreUnavailable), http.StatusServiceUnavailable, ""},
		{"other", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.field, body.Field)
		})
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("connection string mongodb://secret"))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestParseID(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := ParseID(rec, "nope")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	id, ok := ParseID(httptest.NewRecorder(), "665f1c2e8b3e4a0012345678")
	assert.True(t, ok)
	assert.Equal(t, "665f1c2e8b3e4a0012345678", id.Hex())
}
