package httpapi

import (
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func (s *HTTPServer) handleInventoryList(w http.ResponseWriter, r *http.Request) {
	list, err := s.inventory.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.InventoryItem{}
	}
	// Inventory is one of the endpoints that returns a bare array.
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleInventoryGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := s.inventory.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *HTTPServer) handleInventoryCreate(w http.ResponseWriter, r *http.Request) {
	var item models.InventoryItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.inventory.Create(r.Context(), &item)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleInventoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := s.inventory.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := decodeBody(r, item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = id

	updated, err := s.inventory.Update(r.Context(), item)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleInventoryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.inventory.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
