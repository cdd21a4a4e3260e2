package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishnapriya5647/smart-asset-system/internal/client/api"
	"github.com/krishnapriya5647/smart-asset-system/internal/client/models"
)

type NotificationService struct {
	client *api.Client
}

func NewNotificationService(c *api.Client) *NotificationService {
	return &NotificationService{client: c}
}

func (s *NotificationService) List(ctx context.Context) ([]*models.Notification, error) {
	var out []*models.Notification
	err := s.client.Do(ctx, http.MethodGet, "/api/notifications/", nil, &out)
	return out, err
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (s *NotificationService) SetRead(ctx context.Context, id int64, read bool) error {
	body := map[string]bool{"read": read}
	return s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/", id), body, nil)
}

// MarkAllRead tries the bulk endpoint first. If the bulk call fails it falls
// back to patching each unread notification individually, swallowing
// per-item failures so one bad item does not abort the batch. The batch is
// declared done once every item was attempted.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	err := s.client.Do(ctx, http.MethodPost, "/api/notifications/mark-all-read/", nil, nil)
	if err == nil {
		return nil
	}

	list, listErr := s.List(ctx)
	if listErr != nil {
		return listErr
	}
	for _, n := range list {
		if n.IsRead() {
			continue
		}
		_ = s.SetRead(ctx, n.ID, true)
	}
	return nil
}
