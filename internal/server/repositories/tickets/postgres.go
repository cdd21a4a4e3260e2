// Package tickets provides a PostgreSQL-backed repository for repair
// tickets, joined with asset and user display fields.
package tickets

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

const ticketSelect = `
	SELECT t.id, t.asset_id, t.issue, t.status, t.assigned_technician, t.created_by,
	       t.created_at, t.resolution_note, t.resolved_at, t.resolved_by,
	       s.name, s.serial_number, COALESCE(tech.username, ''), creator.username
	FROM repair_tickets t
	JOIN assets s ON s.id = t.asset_id
	LEFT JOIN users tech ON tech.id = t.assigned_technician
	JOIN users creator ON creator.id = t.created_by
`

func scanTicket(row interface{ Scan(...any) error }) (*models.RepairTicket, error) {
	t := &models.RepairTicket{}
	err := row.Scan(&t.ID, &t.AssetID, &t.Issue, &t.Status, &t.AssignedTechnicianID, &t.CreatedByID,
		&t.CreatedAt, &t.ResolutionNote, &t.ResolvedAt, &t.ResolvedByID,
		&t.AssetName, &t.AssetSerial, &t.TechnicianName, &t.CreatedByName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RepairTicket) (*models.RepairTicket, error) {
	query := `
		INSERT INTO repair_tickets (asset_id, issue, status, assigned_technician, created_by, resolution_note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		t.AssetID, t.Issue, t.Status, t.AssignedTechnicianID, t.CreatedByID, t.ResolutionNote,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.RepairTicket, error) {
	return scanTicket(r.db.QueryRowContext(ctx, ticketSelect+" WHERE t.id = $1", id))
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*models.RepairTicket, error) {
	query := ticketSelect
	var conds []string
	var args []any

	if f.InvolvedUser != 0 {
		args = append(args, f.InvolvedUser)
		n := len(args)
		cond := fmt.Sprintf("(t.created_by = $%d OR t.assigned_technician = $%d", n, n)
		if len(f.AssetIDs) > 0 {
			ph := make([]string, 0, len(f.AssetIDs))
			for _, id := range f.AssetIDs {
				args = append(args, id)
				ph = append(ph, fmt.Sprintf("$%d", len(args)))
			}
			cond += " OR t.asset_id IN (" + strings.Join(ph, ", ") + ")"
		}
		cond += ")"
		conds = append(conds, cond)
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC, t.id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RepairTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.RepairTicket) error {
	query := `
		UPDATE repair_tickets
		SET asset_id = $1, issue = $2, status = $3, assigned_technician = $4,
		    resolution_note = $5, resolved_at = $6, resolved_by = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		t.AssetID, t.Issue, t.Status, t.AssignedTechnicianID,
		t.ResolutionNote, t.ResolvedAt, t.ResolvedByID, t.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM repair_tickets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM repair_tickets WHERE status = $1", status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
