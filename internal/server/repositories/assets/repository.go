package assets

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

// Filter narrows the asset list: Query matches name or serial number
// (case-insensitively), Status matches exactly, IDs restricts to the given
// asset ids (used for employee scoping via assignments).
type Filter struct {
	Query  string
	Status string
	IDs    []int64
}

type Repository interface {
	Create(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	Get(ctx context.Context, id int64) (*models.Asset, error)
	List(ctx context.Context, f Filter) ([]*models.Asset, error)
	Update(ctx context.Context, asset *models.Asset) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}
