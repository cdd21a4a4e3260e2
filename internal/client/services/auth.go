// Package services wraps the REST API in typed per-resource services the
// terminal views call. Every call goes through the authenticated client.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/localstate"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/models"
)

// AuthService handles login, logout and the profile endpoints.
type AuthService struct {
	client *api.Client
	store  *localstate.Store
}

func NewAuthService(c *api.Client, store *localstate.Store) *AuthService {
	return &AuthService{client: c, store: store}
}

// Login exchanges credentials for a token pair and persists it.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	var pair models.TokenPair
	body := map[string]string{"username": username, "password": password}
	if err := s.client.Do(ctx, http.MethodPost, "/api/auth/login/", body, &pair); err != nil {
		return err
	}
	return s.store.SetCredentials(ctx, &localstate.Credentials{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout discards the server-side refresh token and clears local credentials.
// Local state is cleared even when the server call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	creds, err := s.store.Credentials(ctx)
	if err == nil && creds != nil {
		body := map[string]string{"refresh": creds.RefreshToken}
		_ = s.client.Do(ctx, http.MethodPost, "/api/auth/logout/", body, nil)
	}
	return s.store.ClearCredentials(ctx)
}

// LoggedIn reports whether a credential pair is stored.
func (s *AuthService) LoggedIn(ctx context.Context) bool {
	creds, err := s.store.Credentials(ctx)
	return err == nil && creds != nil
}

func (s *AuthService) Me(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := s.client.Do(ctx, http.MethodGet, "/api/me/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, username, email string) (*models.Profile, error) {
	var p models.Profile
	body := map[string]string{"username": username, "email": email}
	if err := s.client.Do(ctx, http.MethodPatch, "/api/me/", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.Do(ctx, http.MethodPost, "/api/auth/password-reset/", body, nil)
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, userID int64, token, password string) error {
	body := map[string]string{"password": password}
	path := fmt.Sprintf("/api/auth/password-reset-confirm/%d/%s/", userID, token)
	return s.client.Do(ctx, http.MethodPost, path, body, nil)
}
