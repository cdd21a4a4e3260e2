package services

import (
	"context"
	"database/sql"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assets"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
)

// Viewer identifies the requesting user to the service layer so list
// methods can apply role scoping.
type Viewer struct {
	UserID int64
	Role   string
}

// IsAdmin reports whether the viewer holds the admin role.
func (v Viewer) IsAdmin() bool { return v.Role == models.RoleAdmin }

// AssetService implements asset CRUD with role-scoped listing: employees
// only see assets that have been assigned to them.
type AssetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAssetService(db *sql.DB, m repomanager.RepositoryManager) *AssetService {
	return &AssetService{db: db, repomanager: m}
}

// List applies the scope filter first (admin sees all, admin with employee
// param or a plain employee sees only assigned assets), then the free-text
// and status filters.
func (s *AssetService) List(ctx context.Context, v Viewer, query, status string, employeeID int64) ([]*models.Asset, error) {
	f := assets.Filter{Query: query, Status: status}

	scopeEmployee := int64(0)
	if v.IsAdmin() {
		if employeeID != 0 {
			scopeEmployee = employeeID
		}
	} else {
		scopeEmployee = v.UserID
	}

	if scopeEmployee != 0 {
		ids, err := s.repomanager.Assignments(s.db).AssetIDsForEmployee(ctx, scopeEmployee)
		if err != nil {
			return nil, err
		}
		f.IDs = ids
	}

	return s.repomanager.Assets(s.db).List(ctx, f)
}

func (s *AssetService) Get(ctx context.Context, id int64) (*models.Asset, error) {
	return s.repomanager.Assets(s.db).Get(ctx, id)
}

func (s *AssetService) Create(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	if a.Status == "" {
		a.Status = models.AssetAvailable
	}
	return s.repomanager.Assets(s.db).Create(ctx, a)
}

func (s *AssetService) Update(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	if err := s.repomanager.Assets(s.db).Update(ctx, a); err != nil {
		return nil, err
	}
	return s.repomanager.Assets(s.db).Get(ctx, a.ID)
}

func (s *AssetService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Assets(s.db).Delete(ctx, id)
}
