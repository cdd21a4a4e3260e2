package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/localstate"
)

func newStore(t *testing.T, creds *localstate.Credentials) *localstate.Store {
	t.Helper()
	s, err := localstate.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	if creds != nil {
		require.NoError(t, s.SetCredentials(context.Background(), creds))
	}
	return s
}

func newAuthedClient(store *localstate.Store, refreshURL string, onRedirect func()) *http.Client {
	return &http.Client{Transport: &AuthTransport{
		Store:           store,
		RefreshURL:      refreshURL,
		OnLoginRedirect: onRedirect,
	}}
}

func TestRoundTrip_AttachesBearerHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	hc := newAuthedClient(store, srv.URL+"/refresh", nil)

	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer a1", got)
}

func TestRoundTrip_NoCredentials_SendsUnauthenticated(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	store := newStore(t, nil)
	hc := newAuthedClient(store, srv.URL+"/refresh", nil)

	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "", got)
}

func TestRoundTrip_RefreshesOnceAndReplays(t *testing.T) {
	var apiCalls, refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		var body struct {
			Refresh string `json:"refresh"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "r1", body.Refresh)
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer a2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	hc := newAuthedClient(store, srv.URL+"/refresh", nil)

	resp, err := hc.Get(srv.URL + "/data")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())

	// Access token replaced, refresh token unchanged.
	creds, err := store.Credentials(context.Background())
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "a2", creds.AccessToken)
	assert.Equal(t, "r1", creds.RefreshToken)
}

func TestRoundTrip_SecondUnauthorizedIsFinal(t *testing.T) {
	var apiCalls, refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	hc := newAuthedClient(store, srv.URL+"/refresh", nil)

	resp, err := hc.Get(srv.URL + "/data")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), apiCalls.Load(), "exactly one replay, even when it fails again")
	assert.Equal(t, int32(1), refreshCalls.Load())
}

func TestRoundTrip_RefreshFailure_ClearsCredentialsAndRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	redirected := false
	hc := newAuthedClient(store, srv.URL+"/refresh", func() { redirected = true })

	resp, err := hc.Get(srv.URL + "/data")
	require.NoError(t, err)
	resp.Body.Close()

	// The original 401 still reaches the caller.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.True(t, redirected)

	creds, err := store.Credentials(context.Background())
	require.NoError(t, err)
	assert.Nil(t, creds)
}

func TestRoundTrip_NoRefreshToken_GoesStraightToLogin(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: ""})
	redirected := false
	hc := newAuthedClient(store, srv.URL+"/refresh", func() { redirected = true })

	resp, err := hc.Get(srv.URL + "/data")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), refreshCalls.Load())
	assert.True(t, redirected)
}

func TestRoundTrip_ReplaysRequestBody(t *testing.T) {
	var bodies []string
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		if r.Header.Get("Authorization") != "Bearer a2" {
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := newStore(t, &localstate.Credentials{AccessToken: "a1", RefreshToken: "r1"})
	hc := newAuthedClient(store, srv.URL+"/refresh", nil)

	resp, err := hc.Post(srv.URL+"/data", "application/json", strings.NewReader(`{"x":1}`))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, bodies, 2)
	assert.Equal(t, `{"x":1}`, bodies[0])
	assert.Equal(t, `{"x":1}`, bodies[1], "replay carries the original body")
}
