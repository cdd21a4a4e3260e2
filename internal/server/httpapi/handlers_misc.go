package httpapi

import (
	"net/http"
	"strconv"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func (s *HTTPServer) handleUserList(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.User{}
	}
	// Users is one of the endpoints that returns a bare array.
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleUserGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	user, err := s.users.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) handleNotificationList(w http.ResponseWriter, r *http.Request) {
	list, err := s.notifications.List(r.Context(), viewerFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.Notification{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleNotificationPatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Read *bool `json:"read"`
	}
	if err := decodeBody(r, &req); err != nil || req.Read == nil {
		writeError(w, http.StatusBadRequest, "Only 'read' can be updated.")
		return
	}

	n, err := s.notifications.SetRead(r.Context(), viewerFrom(r).UserID, id, *req.Read)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *HTTPServer) handleNotificationMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.MarkAllRead(r.Context(), viewerFrom(r).UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *HTTPServer) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recent, err := s.dashboard.Recent(r.Context(), viewerFrom(r), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}
