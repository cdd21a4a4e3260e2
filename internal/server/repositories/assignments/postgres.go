// Package assignments provides a PostgreSQL-backed repository for asset
// assignments, joined with asset and employee display fields.
package assignments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

const assignmentSelect = `
	SELECT a.id, a.asset_id, a.employee_id, a.date_assigned, a.date_returned,
	       a.status, a.return_requested_at, a.return_note, a.returned_at, a.returned_by,
	       s.name, s.serial_number, u.username
	FROM assignments a
	JOIN assets s ON s.id = a.asset_id
	JOIN users u ON u.id = a.employee_id
`

func scanAssignment(row interface{ Scan(...any) error }) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.AssetID, &a.EmployeeID, &a.DateAssigned, &a.DateReturned,
		&a.Status, &a.ReturnRequestedAt, &a.ReturnNote, &a.ReturnedAt, &a.ReturnedByID,
		&a.AssetName, &a.AssetSerial, &a.EmployeeName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error) {
	query := `
		INSERT INTO assignments (asset_id, employee_id, date_assigned, status, return_note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		a.AssetID, a.EmployeeID, a.DateAssigned, a.Status, a.ReturnNote,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	return scanAssignment(r.db.QueryRowContext(ctx, assignmentSelect+" WHERE a.id = $1", id))
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*models.Assignment, error) {
	query := assignmentSelect
	var args []any

	if f.EmployeeID != 0 {
		args = append(args, f.EmployeeID)
		query += fmt.Sprintf(" WHERE a.employee_id = $%d", len(args))
	}
	query += " ORDER BY a.date_assigned DESC, a.id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.Assignment) error {
	query := `
		UPDATE assignments
		SET asset_id = $1, employee_id = $2, date_assigned = $3, date_returned = $4,
		    status = $5, return_requested_at = $6, return_note = $7, returned_at = $8, returned_by = $9
		WHERE id = $10
	`
	res, err := r.db.ExecContext(ctx, query,
		a.AssetID, a.EmployeeID, a.DateAssigned, a.DateReturned,
		a.Status, a.ReturnRequestedAt, a.ReturnNote, a.ReturnedAt, a.ReturnedByID, a.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) AssetIDsForEmployee(ctx context.Context, employeeID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT asset_id FROM assignments WHERE employee_id = $1", employeeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
