// Package assets provides a PostgreSQL-backed repository for assets.
package assets

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

const assetColumns = "id, name, type, serial_number, status, purchase_date"

func scanAsset(row interface{ Scan(...any) error }) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(&a.ID, &a.Name, &a.Type, &a.SerialNumber, &a.Status, &a.PurchaseDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	query := `
		INSERT INTO assets (name, type, serial_number, status, purchase_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		asset.Name, asset.Type, asset.SerialNumber, asset.Status, asset.PurchaseDate,
	).Scan(&asset.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return asset, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Asset, error) {
	query := "SELECT " + assetColumns + " FROM assets WHERE id = $1"
	return scanAsset(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*models.Asset, error) {
	query := "SELECT " + assetColumns + " FROM assets"
	var conds []string
	var args []any

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := fmt.Sprintf("$%d", len(args))
		conds = append(conds, "(name ILIKE "+n+" OR serial_number ILIKE "+n+")")
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.IDs != nil {
		if len(f.IDs) == 0 {
			return nil, nil
		}
		ph := make([]string, 0, len(f.IDs))
		for _, id := range f.IDs {
			args = append(args, id)
			ph = append(ph, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, "id IN ("+strings.Join(ph, ", ")+")")
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, asset *models.Asset) error {
	query := `
		UPDATE assets
		SET name = $1, type = $2, serial_number = $3, status = $4, purchase_date = $5
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		asset.Name, asset.Type, asset.SerialNumber, asset.Status, asset.PurchaseDate, asset.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE assets SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM assets GROUP BY status ORDER BY status")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
