package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/auth"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/config"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/users"
)

// fakeUserRepo keeps accounts in a map keyed by username.
type fakeUserRepo struct {
	users.Repository
	byName map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	user.ID = int64(len(f.byName) + 1)
	f.byName[user.UserName] = user
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type seedRepoMgr struct {
	repomanager.RepositoryManager
	users *fakeUserRepo
}

func (m *seedRepoMgr) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func newSeedService(seed ...*models.User) (*UserService, *fakeUserRepo) {
	repo := &fakeUserRepo{byName: map[string]*models.User{}}
	for _, u := range seed {
		repo.byName[u.UserName] = u
	}
	svc := NewUserService(nil, &seedRepoMgr{users: repo}, nil, &config.Config{})
	return svc, repo
}

func TestEnsureAdmin_SeedsMissingAccount(t *testing.T) {
	svc, repo := newSeedService()

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "seed-pw"))

	u, ok := repo.byName["admin"]
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, u.Role)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.True(t, auth.CheckPassword(u.PasswordHash, "seed-pw"))
}

func TestEnsureAdmin_ExistingAccountUntouched(t *testing.T) {
	svc, repo := newSeedService(&models.User{ID: 7, UserName: "admin", PasswordHash: "original", Role: models.RoleAdmin})

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "", "new-pw"))

	assert.Equal(t, "original", repo.byName["admin"].PasswordHash)
}

func TestEnsureAdmin_SkipsWithoutCredentials(t *testing.T) {
	svc, repo := newSeedService()

	require.NoError(t, svc.EnsureAdmin(context.Background(), "", "", ""))
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "", ""))

	assert.Empty(t, repo.byName)
}
