// Package inventory provides a PostgreSQL-backed repository for consumable
// inventory items.
package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	i := &models.InventoryItem{}
	err := row.Scan(&i.ID, &i.ItemType, &i.Quantity, &i.Threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return i, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	query := `
		INSERT INTO inventory_items (item_type, quantity, threshold)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, item.ItemType, item.Quantity, item.Threshold).Scan(&item.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := "SELECT id, item_type, quantity, threshold FROM inventory_items WHERE id = $1"
	return scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	query := "SELECT id, item_type, quantity, threshold FROM inventory_items ORDER BY item_type"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.InventoryItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, i)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	query := "UPDATE inventory_items SET item_type = $1, quantity = $2, threshold = $3 WHERE id = $4"
	res, err := r.db.ExecContext(ctx, query, item.ItemType, item.Quantity, item.Threshold, item.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inventory_items").Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
