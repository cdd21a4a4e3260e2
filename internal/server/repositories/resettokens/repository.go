package resettokens

import (
	"context"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID int64, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.PasswordResetToken, error)
	Delete(ctx context.Context, token string) error
}
