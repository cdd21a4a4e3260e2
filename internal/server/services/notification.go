package services

import (
	"context"
	"database/sql"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
)

// NotificationService exposes the per-user notification feed.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.repomanager.Notifications(s.db).ListForUser(ctx, userID)
}

// SetRead flips the read flag on one of the user's own notifications.
func (s *NotificationService) SetRead(ctx context.Context, userID, id int64, read bool) (*models.Notification, error) {
	repo := s.repomanager.Notifications(s.db)
	n, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, common.ErrorForbidden
	}
	if err := repo.SetRead(ctx, id, read); err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repomanager.Notifications(s.db).MarkAllRead(ctx, userID)
}

// notify inserts a single notification row, swallowing duplicates is not
// needed; a failure is returned so callers can decide to log and continue.
func notify(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB, userID int64, notifType, title, message, entityType string, entityID int64) error {
	_, err := m.Notifications(db).Create(ctx, &models.Notification{
		UserID:     userID,
		Type:       notifType,
		Title:      title,
		Message:    message,
		EntityType: entityType,
		EntityID:   &entityID,
	})
	return err
}

// notifyAdmins fans a notification out to every admin account.
func notifyAdmins(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB, notifType, title, message, entityType string, entityID int64) error {
	adminIDs, err := m.Users(db).ListAdminIDs(ctx)
	if err != nil {
		return err
	}
	batch := make([]*models.Notification, 0, len(adminIDs))
	for _, id := range adminIDs {
		eid := entityID
		batch = append(batch, &models.Notification{
			UserID:     id,
			Type:       notifType,
			Title:      title,
			Message:    message,
			EntityType: entityType,
			EntityID:   &eid,
		})
	}
	return m.Notifications(db).CreateBatch(ctx, batch)
}
