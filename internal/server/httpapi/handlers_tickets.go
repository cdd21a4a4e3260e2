package httpapi

import (
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func (s *HTTPServer) handleTicketList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := s.tickets.List(r.Context(), viewerFrom(r), q.Get("status"), queryInt64(r, "employee"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.RepairTicket{}
	}
	writeJSON(w, http.StatusOK, envelope{Results: list})
}

func (s *HTTPServer) handleTicketGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := s.tickets.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *HTTPServer) handleTicketCreate(w http.ResponseWriter, r *http.Request) {
	var t models.RepairTicket
	if err := decodeBody(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.tickets.Create(r.Context(), viewerFrom(r), &t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleTicketUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := s.tickets.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := decodeBody(r, t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t.ID = id

	updated, err := s.tickets.Update(r.Context(), viewerFrom(r), t)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleTicketDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.tickets.Delete(r.Context(), viewerFrom(r), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleTicketMarkDone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	_ = decodeBody(r, &req) // note is optional

	t, err := s.tickets.MarkDone(r.Context(), viewerFrom(r), id, req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *HTTPServer) handleTicketApproveClose(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := s.tickets.ApproveClose(r.Context(), viewerFrom(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
