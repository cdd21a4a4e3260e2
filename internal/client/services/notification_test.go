package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
)

const notificationFeed = `[
  {"id": 1, "notif_type": "INFO", "title": "n1", "read_at": null},
  {"id": 2, "notif_type": "INFO", "title": "n2", "read_at": "2026-08-01T10:00:00Z"},
  {"id": 3, "notif_type": "INFO", "title": "n3", "read_at": null},
  {"id": 4, "notif_type": "INFO", "title": "n4", "read_at": null},
  {"id": 5, "notif_type": "INFO", "title": "n5", "read_at": null},
  {"id": 6, "notif_type": "INFO", "title": "n6", "read_at": null}
]`

func TestMarkAllRead_BulkSuccess_NoFallback(t *testing.T) {
	var patches atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notifications/mark-all-read/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("PATCH /api/notifications/", func(w http.ResponseWriter, r *http.Request) {
		patches.Add(1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewNotificationService(api.NewClient(srv.URL, srv.Client()))
	require.NoError(t, s.MarkAllRead(context.Background()))
	assert.Equal(t, int32(0), patches.Load())
}

func TestMarkAllRead_BulkFails_PatchesEachUnread(t *testing.T) {
	var patched []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/notifications/mark-all-read/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /api/notifications/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(notificationFeed))
	})
	mux.HandleFunc("PATCH /api/notifications/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/notifications/"), "/")
		patched = append(patched, id)
		// Three of five individual patches fail; the batch still finishes.
		if id == "1" || id == "3" || id == "4" {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewNotificationService(api.NewClient(srv.URL, srv.Client()))
	require.NoError(t, s.MarkAllRead(context.Background()))

	// Only the five unread ones are patched; the read one (id 2) is skipped.
	assert.Equal(t, []string{"1", "3", "4", "5", "6"}, patched)
}

func TestUnreadCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(notificationFeed))
	}))
	defer srv.Close()

	s := NewNotificationService(api.NewClient(srv.URL, srv.Client()))
	n, err := s.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
