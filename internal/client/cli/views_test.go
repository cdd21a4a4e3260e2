package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/services"
)

func TestRenderList_AppliesQueryBeforeFocus(t *testing.T) {
	a := &App{assignmentsView: NewListView("Assignments", []string{"id", "name"}, 10)}

	a.renderList(a.assignmentsView, makeRows(25), ViewRequest{Query: "item-11", FocusID: 117})

	require.Same(t, a.assignmentsView, a.activeView)
	// "item-11" narrows the list to ids 110..119, one page, so the focused
	// row is armed in place.
	assert.Equal(t, 1, a.assignmentsView.PageCount())
	out := render(a.assignmentsView)
	assert.Contains(t, out, "* 117")
	assert.NotContains(t, out, "item-109")
}

func TestShowTickets_SearchesClientSideOnly(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[
			{"id": 1, "asset_name": "Printer X", "issue": "paper jam", "status": "OPEN"},
			{"id": 2, "asset_name": "Laptop", "issue": "dead screen", "status": "OPEN"}
		]`))
	}))
	defer srv.Close()

	a := &App{
		ticketService: services.NewTicketService(api.NewClient(srv.URL, srv.Client())),
		ticketsView:   NewListView("Repair tickets", []string{"id", "asset", "issue", "status", "technician"}, 10),
	}

	require.NoError(t, a.showTickets(context.Background(), ViewRequest{Query: "printer"}))

	// The backend never sees the search text; the view filters locally.
	assert.NotContains(t, rawQuery, "q=")
	out := render(a.ticketsView)
	assert.Contains(t, out, "Printer X")
	assert.NotContains(t, out, "Laptop")
}

func TestNewTicket_PromptsAndPosts(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/tickets/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 9, "asset": 3, "issue": "Screen flickers", "status": "OPEN"}`))
	}))
	defer srv.Close()

	a := &App{
		ticketService: services.NewTicketService(api.NewClient(srv.URL, srv.Client())),
		reader:        bufio.NewReader(strings.NewReader("3\nScreen flickers\n")),
	}

	require.NoError(t, a.newTicket(context.Background()))
	assert.Equal(t, float64(3), body["asset"])
	assert.Equal(t, "Screen flickers", body["issue"])
}

func TestEditAsset_KeepsBlankFields(t *testing.T) {
	var patched map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/assets/5/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 5, "name": "Dell XPS", "type": "LAPTOP", "serial_number": "SN-5", "status": "AVAILABLE"}`))
	})
	mux.HandleFunc("PATCH /api/assets/5/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patched))
		_, _ = w.Write([]byte(`{"id": 5}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := &App{
		assetService: services.NewAssetService(api.NewClient(srv.URL, srv.Client())),
		// New name, everything else blank keeps the stored values.
		reader: bufio.NewReader(strings.NewReader("Dell XPS 15\n\n\n\n")),
	}

	require.NoError(t, a.editAsset(context.Background(), 5))
	assert.Equal(t, "Dell XPS 15", patched["name"])
	assert.Equal(t, "LAPTOP", patched["type"])
	assert.Equal(t, "SN-5", patched["serial_number"])
	assert.Equal(t, "AVAILABLE", patched["status"])
}
