package notifications

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	CreateBatch(ctx context.Context, ns []*models.Notification) error
	Get(ctx context.Context, id int64) (*models.Notification, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	SetRead(ctx context.Context, id int64, read bool) error
	MarkAllRead(ctx context.Context, userID int64) error
}
