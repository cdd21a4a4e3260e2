// Package api talks to the asset-system backend over REST. It provides an
// http.RoundTripper that injects the stored access token and transparently
// recovers from a single expired-token failure, plus a thin JSON client the
// resource services are built on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/localstate"
)

// CredentialStore is the slice of the local state store the transport needs.
type CredentialStore interface {
	Credentials(ctx context.Context) (*localstate.Credentials, error)
	SetCredentials(ctx context.Context, c *localstate.Credentials) error
	ClearCredentials(ctx context.Context) error
}

type ctxKey int

const retriedKey ctxKey = 0

// AuthTransport attaches "Authorization: <scheme> <access>" to every request
// and, on a 401, refreshes the access token once and replays the request.
//
// The refresh call goes through a separate plain client so it is never
// intercepted itself. On a successful refresh the stored pair keeps its
// refresh token and only the access token is replaced. If the refresh fails
// or no refresh token is stored, credentials are cleared, the login redirect
// fires, and the original 401 is still returned to the caller.
type AuthTransport struct {
	Base  http.RoundTripper
	Store CredentialStore

	// RefreshURL is the absolute URL of the token refresh endpoint.
	RefreshURL string

	// Scheme defaults to "Bearer".
	Scheme string

	// OnLoginRedirect is invoked after credentials are cleared. May be nil.
	OnLoginRedirect func()

	// RefreshClient performs the refresh call; defaults to a plain
	// http.Client without this transport.
	RefreshClient *http.Client
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) scheme() string {
	if t.Scheme != "" {
		return t.Scheme
	}
	return "Bearer"
}

func (t *AuthTransport) refreshClient() *http.Client {
	if t.RefreshClient != nil {
		return t.RefreshClient
	}
	return &http.Client{}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	creds, err := t.Store.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	if creds != nil {
		req = req.Clone(ctx)
		req.Header.Set("Authorization", t.scheme()+" "+creds.AccessToken)
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// Replayed requests carry the retried mark; a second 401 is final.
	if ctx.Value(retriedKey) != nil {
		return resp, nil
	}

	if creds == nil || creds.RefreshToken == "" {
		t.forceLogin(ctx)
		return resp, nil
	}

	access, refreshErr := t.refresh(ctx, creds.RefreshToken)
	if refreshErr != nil {
		t.forceLogin(ctx)
		return resp, nil
	}

	if err := t.Store.SetCredentials(ctx, &localstate.Credentials{
		AccessToken:  access,
		RefreshToken: creds.RefreshToken,
	}); err != nil {
		return resp, nil
	}

	replay, err := cloneForReplay(req)
	if err != nil {
		return resp, nil
	}
	drainClose(resp.Body)

	replay.Header.Set("Authorization", t.scheme()+" "+access)
	return t.base().RoundTrip(replay)
}

// refresh exchanges the refresh token for a new access token.
func (t *AuthTransport) refresh(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.RefreshURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.refreshClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh rejected: %s", resp.Status)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("refresh response without access token")
	}
	return out.Access, nil
}

func (t *AuthTransport) forceLogin(ctx context.Context) {
	_ = t.Store.ClearCredentials(ctx)
	if t.OnLoginRedirect != nil {
		t.OnLoginRedirect()
	}
}

// cloneForReplay produces a resend-able copy of req with the retried mark
// set. Requests with a non-rewindable body cannot be replayed.
func cloneForReplay(req *http.Request) (*http.Request, error) {
	clone := req.Clone(context.WithValue(req.Context(), retriedKey, struct{}{}))
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}

// drainClose fully reads and closes a response body so the underlying
// connection can be reused.
func drainClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
