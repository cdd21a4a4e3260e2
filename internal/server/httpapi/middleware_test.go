package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/auth"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/services"
)

const testSecret = "test-secret"

func testServer() *HTTPServer {
	return &HTTPServer{jwtSecret: []byte(testSecret)}
}

func token(t *testing.T, userID int64, role string, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, role, []byte(testSecret), validity)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth_InjectsViewer(t *testing.T) {
	s := testServer()

	var got services.Viewer
	h := s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		got = viewerFrom(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 7, models.RoleAdmin, time.Minute))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestRequireAuth_Rejections(t *testing.T) {
	s := testServer()
	h := s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + token(t, 7, models.RoleEmployee, -time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "detail")
		})
	}
}

func TestRequireAuth_SchemeIsCaseInsensitive(t *testing.T) {
	s := testServer()
	called := false
	h := s.requireAuth(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/assets/", nil)
	req.Header.Set("Authorization", "bearer "+token(t, 1, models.RoleEmployee, time.Minute))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.True(t, called)
}

func TestRequireAdmin_RejectsEmployee(t *testing.T) {
	s := testServer()
	h := s.requireAuth(s.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/assets/1/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 2, models.RoleEmployee, time.Minute))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	s := testServer()
	called := false
	h := s.requireAuth(s.requireAdmin(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodDelete, "/api/assets/1/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 2, models.RoleAdmin, time.Minute))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.True(t, called)
}
