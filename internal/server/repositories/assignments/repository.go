package assignments

import (
	"context"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

// Filter narrows the assignment list. EmployeeID scopes to a single
// employee; Limit caps the number of rows (0 means no cap).
type Filter struct {
	EmployeeID int64
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error)
	Get(ctx context.Context, id int64) (*models.Assignment, error)
	List(ctx context.Context, f Filter) ([]*models.Assignment, error)
	Update(ctx context.Context, a *models.Assignment) error
	Delete(ctx context.Context, id int64) error
	AssetIDsForEmployee(ctx context.Context, employeeID int64) ([]int64, error)
}
