package httpapi

import (
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

func (s *HTTPServer) handleAssetList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := s.assets.List(r.Context(), viewerFrom(r), q.Get("q"), q.Get("status"), queryInt64(r, "employee"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []*models.Asset{}
	}
	writeJSON(w, http.StatusOK, envelope{Results: list})
}

func (s *HTTPServer) handleAssetGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	asset, err := s.assets.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *HTTPServer) handleAssetCreate(w http.ResponseWriter, r *http.Request) {
	var asset models.Asset
	if err := decodeBody(r, &asset); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := s.assets.Create(r.Context(), &asset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleAssetUpdate serves both PUT and PATCH: the current record is loaded
// first and the body is decoded onto it, so fields the body omits keep their
// stored values.
func (s *HTTPServer) handleAssetUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	asset, err := s.assets.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := decodeBody(r, asset); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	asset.ID = id

	updated, err := s.assets.Update(r.Context(), asset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleAssetDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := s.assets.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
