package services

import (
	"context"
	"database/sql"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
)

// InventoryService implements plain CRUD on consumable inventory items.
type InventoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewInventoryService(db *sql.DB, m repomanager.RepositoryManager) *InventoryService {
	return &InventoryService{db: db, repomanager: m}
}

func (s *InventoryService) List(ctx context.Context) ([]*models.InventoryItem, error) {
	return s.repomanager.Inventory(s.db).List(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	return s.repomanager.Inventory(s.db).Get(ctx, id)
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	return s.repomanager.Inventory(s.db).Create(ctx, item)
}

func (s *InventoryService) Update(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := s.repomanager.Inventory(s.db).Update(ctx, item); err != nil {
		return nil, err
	}
	return s.repomanager.Inventory(s.db).Get(ctx, item.ID)
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Inventory(s.db).Delete(ctx, id)
}
