package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
)

func TestWriteServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", common.ErrorNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading asset: %w", common.ErrorNotFound), http.StatusNotFound},
		{"unauthorized", common.ErrorUnauthorized, http.StatusUnauthorized},
		{"expired token", common.ErrTokenExpired, http.StatusUnauthorized},
		{"expired refresh token", common.ErrRefreshTokenExpired, http.StatusUnauthorized},
		{"forbidden", common.ErrorForbidden, http.StatusForbidden},
		{"validation", common.ErrorValidation, http.StatusBadRequest},
		{"already exists", common.ErrorAlreadyExists, http.StatusBadRequest},
		{"anything else", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "detail")
		})
	}
}

func TestWriteJSON_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, envelope{Results: []int{1, 2, 3}})

	assert.JSONEq(t, `{"results":[1,2,3]}`, rec.Body.String())
}
