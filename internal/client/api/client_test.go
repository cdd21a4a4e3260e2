package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestDecodeList_BareArray(t *testing.T) {
	var out []item
	err := decodeList([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`), &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestDecodeList_ResultsEnvelope(t *testing.T) {
	var out []item
	err := decodeList([]byte(`{"results":[{"id":3,"name":"c"}]}`), &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Name)
}

func TestDecodeList_SingleObjectPassesThrough(t *testing.T) {
	var out item
	err := decodeList([]byte(`{"id":7,"name":"solo"}`), &out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
}

func TestDo_MapsErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"token expired"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"detail":"admin only"}`, ErrForbidden},
		{"not found", http.StatusNotFound, `{"detail":"no such record"}`, ErrNotFound},
		{"bad gateway", http.StatusBadGateway, ``, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, srv.Client())
			err := c.Do(context.Background(), http.MethodGet, "/x/", nil, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_DecodesEnvelopedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":1,"name":"x"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	var out []item
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/x/", nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].Name)
}
