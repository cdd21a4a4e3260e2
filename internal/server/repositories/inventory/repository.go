package inventory

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)
	Get(ctx context.Context, id int64) (*models.InventoryItem, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
