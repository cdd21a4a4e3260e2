package httpapi

import (
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func (s *HTTPServer) handleAssignmentList(w http.ResponseWriter, r *http.Request) {
	list, err := s.assignments.List(r.Context(), viewerFrom(r), queryInt64(r, "employee"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.Assignment{}
	}
	writeJSON(w, http.StatusOK, envelope{Results: list})
}

func (s *HTTPServer) handleAssignmentGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := s.assignments.Get(r.Context(), viewerFrom(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *HTTPServer) handleAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	var a models.Assignment
	if err := decodeBody(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.assignments.Create(r.Context(), &a)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleAssignmentUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := s.assignments.Get(r.Context(), viewerFrom(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := decodeBody(r, a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = id

	updated, err := s.assignments.Update(r.Context(), a)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleAssignmentDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.assignments.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleAssignmentRequestReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	_ = decodeBody(r, &req) // note is optional, an empty body is fine

	a, err := s.assignments.RequestReturn(r.Context(), viewerFrom(r), id, req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *HTTPServer) handleAssignmentConfirmReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	a, err := s.assignments.ConfirmReturn(r.Context(), viewerFrom(r), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
