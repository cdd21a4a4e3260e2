package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/dbx"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/notifications"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
)

// fakeNotifRepo keeps notifications in a map, enough for the service rules.
type fakeNotifRepo struct {
	byID map[int64]*models.Notification
}

func (f *fakeNotifRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	n.ID = int64(len(f.byID) + 1)
	f.byID[n.ID] = n
	return n, nil
}

func (f *fakeNotifRepo) CreateBatch(ctx context.Context, ns []*models.Notification) error {
	for _, n := range ns {
		if _, err := f.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeNotifRepo) Get(ctx context.Context, id int64) (*models.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return n, nil
}

func (f *fakeNotifRepo) ListForUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.byID {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) SetRead(ctx context.Context, id int64, read bool) error {
	n, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	if read {
		now := time.Now()
		n.ReadAt = &now
	} else {
		n.ReadAt = nil
	}
	return nil
}

func (f *fakeNotifRepo) MarkAllRead(ctx context.Context, userID int64) error {
	now := time.Now()
	for _, n := range f.byID {
		if n.UserID == userID && n.ReadAt == nil {
			n.ReadAt = &now
		}
	}
	return nil
}

type fakeRepoMgr struct {
	repomanager.RepositoryManager
	notif *fakeNotifRepo
}

func (f *fakeRepoMgr) Notifications(db dbx.DBTX) notifications.Repository {
	return f.notif
}

func newNotifService(seed ...*models.Notification) (*NotificationService, *fakeNotifRepo) {
	repo := &fakeNotifRepo{byID: map[int64]*models.Notification{}}
	for _, n := range seed {
		repo.byID[n.ID] = n
	}
	return NewNotificationService(nil, &fakeRepoMgr{notif: repo}), repo
}

func TestSetRead_MarksOwnNotification(t *testing.T) {
	svc, _ := newNotifService(&models.Notification{ID: 1, UserID: 10, Type: models.NotifInfo})

	n, err := svc.SetRead(context.Background(), 10, 1, true)
	require.NoError(t, err)
	assert.True(t, n.IsRead())
}

func TestSetRead_OtherUsersNotificationIsForbidden(t *testing.T) {
	svc, repo := newNotifService(&models.Notification{ID: 1, UserID: 10, Type: models.NotifInfo})

	_, err := svc.SetRead(context.Background(), 99, 1, true)
	assert.ErrorIs(t, err, common.ErrorForbidden)
	assert.False(t, repo.byID[1].IsRead())
}

func TestSetRead_MissingNotification(t *testing.T) {
	svc, _ := newNotifService()

	_, err := svc.SetRead(context.Background(), 10, 42, true)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMarkAllRead_OnlyTouchesOwnUnread(t *testing.T) {
	already := time.Now().Add(-time.Hour)
	svc, repo := newNotifService(
		&models.Notification{ID: 1, UserID: 10},
		&models.Notification{ID: 2, UserID: 10, ReadAt: &already},
		&models.Notification{ID: 3, UserID: 20},
	)

	require.NoError(t, svc.MarkAllRead(context.Background(), 10))

	assert.True(t, repo.byID[1].IsRead())
	assert.Equal(t, already, *repo.byID[2].ReadAt, "already-read timestamp untouched")
	assert.False(t, repo.byID[3].IsRead(), "other user's feed untouched")
}
