// Package services contains server-side business logic. This file implements
// UserService, which handles login, issuing/refreshing JWTs plus
// server-stored refresh tokens, profile updates, and password resets.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/auth"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/config"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/storage"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// Profile is the authenticated user's own view, including a temporary avatar
// URL when an avatar has been uploaded.
type Profile struct {
	*models.User
	AvatarURL string `json:"avatar_url,omitempty"`
}

// UserService provides authentication-related operations:
// - Login: verify credentials and mint tokens
// - RefreshToken: mint new access tokens off a stored refresh token
// - password reset request/confirm
// - profile and avatar updates
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	avatars     *storage.AvatarStore
	jwtSecret   []byte
	cfg         *config.Config
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, avatars *storage.AvatarStore, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		avatars:     avatars,
		jwtSecret:   []byte(cfg.SecretKey),
		cfg:         cfg,
	}
}

// Register creates a new user account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password, role string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if role == "" {
		role = models.RoleEmployee
	}
	user := &models.User{UserName: username, Email: email, PasswordHash: hash, Role: role}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// EnsureAdmin seeds the bootstrap admin account on startup so a fresh
// deployment has someone who can log in. Missing credentials skip the seed;
// an existing account is left untouched.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}
	_, err = s.Register(ctx, username, email, password, models.RoleAdmin)
	return err
}

// Login verifies the provided password against the stored hash and,
// on success, returns a new TokenPair.
func (s *UserService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, user, s.db)
}

// RefreshToken validates a refresh token and mints a new access token. The
// refresh token itself stays valid until it expires or the user logs out, so
// clients keep the pair they already stored and only replace the access half.
// Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	access, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout discards the presented refresh token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken)
}

// Me returns the user's profile with a presigned avatar URL if one exists.
func (s *UserService) Me(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &Profile{User: user}
	if user.AvatarKey != "" {
		url, err := s.avatars.PresignedGetURL(ctx, user.AvatarKey)
		if err == nil {
			p.AvatarURL = url
		}
	}
	return p, nil
}

// UpdateProfile changes the user's username and/or email; empty values keep
// the current ones.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, email string) (*Profile, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if username == "" {
		username = user.UserName
	}
	if email == "" {
		email = user.Email
	}
	if err := repo.UpdateProfile(ctx, userID, username, email); err != nil {
		return nil, err
	}
	return s.Me(ctx, userID)
}

// UploadAvatar stores the avatar bytes in object storage and records the key.
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, contentType string, body io.Reader) (*Profile, error) {
	key := storage.NewAvatarKey(userID)
	if err := s.avatars.Put(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("error storing avatar: %w", err)
	}
	if err := s.repomanager.Users(s.db).UpdateAvatarKey(ctx, userID, key); err != nil {
		return nil, err
	}
	return s.Me(ctx, userID)
}

// ListUsers returns all accounts (admin only, enforced by the HTTP layer).
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// GetUser returns a single account by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// RequestPasswordReset issues a one-shot reset token for the account with the
// given email. To avoid leaking account existence, an unknown email is not an
// error: the empty token signals "nothing issued" to the caller.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (int64, string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, "", nil
		}
		return 0, "", common.ErrorInternal
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return 0, "", common.ErrorInternal
	}
	if err := s.repomanager.ResetTokens(s.db).Create(ctx, user.ID, token, s.cfg.ResetTokenValidityDuration); err != nil {
		return 0, "", common.ErrorInternal
	}
	return user.ID, token, nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
// Existing refresh tokens for the user are revoked.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, userID int64, token, newPassword string) error {
	repo := s.repomanager.ResetTokens(s.db)
	rt, err := repo.Find(ctx, token)
	if err != nil {
		return common.ErrInvalidToken
	}
	if rt.UserID != userID {
		return common.ErrInvalidToken
	}
	if rt.Expires.Before(time.Now()) {
		return common.ErrTokenExpired
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return common.ErrorInternal
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePassword(ctx, userID, hash); err != nil {
			return err
		}
		if err := s.repomanager.ResetTokens(tx).Delete(ctx, token); err != nil {
			return err
		}
		return s.repomanager.RefreshTokens(tx).DeleteForUser(ctx, userID)
	})
}

// --- helpers below ---

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, user.ID, refresh, s.cfg.RefreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
