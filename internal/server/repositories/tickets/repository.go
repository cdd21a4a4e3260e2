package tickets

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

// Filter narrows the ticket list. InvolvedUser matches tickets the user
// created, is assigned to as technician, or whose asset is in AssetIDs
// (the user's assigned assets). Status matches exactly. Limit caps rows.
type Filter struct {
	InvolvedUser int64
	AssetIDs     []int64
	Status       string
	Limit        int
}

type Repository interface {
	Create(ctx context.Context, t *models.RepairTicket) (*models.RepairTicket, error)
	Get(ctx context.Context, id int64) (*models.RepairTicket, error)
	List(ctx context.Context, f Filter) ([]*models.RepairTicket, error)
	Update(ctx context.Context, t *models.RepairTicket) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int, error)
}
