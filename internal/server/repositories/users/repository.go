package users

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListAdminIDs(ctx context.Context) ([]int64, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) error
	UpdateAvatarKey(ctx context.Context, id int64, key string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
