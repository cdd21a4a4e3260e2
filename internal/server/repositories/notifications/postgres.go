// Package notifications provides a PostgreSQL-backed repository for per-user
// notification rows.
package notifications

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

const notifColumns = "id, user_id, notif_type, title, message, entity_type, entity_id, read_at, created_at"

func scanNotification(row interface{ Scan(...any) error }) (*models.Notification, error) {
	n := &models.Notification{}
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
		&n.EntityType, &n.EntityID, &n.ReadAt, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, notif_type, title, message, entity_type, entity_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		n.UserID, n.Type, n.Title, n.Message, n.EntityType, n.EntityID,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) CreateBatch(ctx context.Context, ns []*models.Notification) error {
	for _, n := range ns {
		if _, err := r.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Notification, error) {
	query := "SELECT " + notifColumns + " FROM notifications WHERE id = $1"
	return scanNotification(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	query := "SELECT " + notifColumns + " FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) SetRead(ctx context.Context, id int64, read bool) error {
	var query string
	if read {
		query = "UPDATE notifications SET read_at = now() WHERE id = $1 AND read_at IS NULL"
	} else {
		query = "UPDATE notifications SET read_at = NULL WHERE id = $1"
	}
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, userID int64) error {
	query := "UPDATE notifications SET read_at = now() WHERE user_id = $1 AND read_at IS NULL"
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
