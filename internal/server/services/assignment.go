package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assignments"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
)

// AssignmentService implements assignment CRUD plus the two-sided return
// handshake: the employee requests a return, the admin confirms it.
// Create/update/return flows fan notifications out to the affected users.
type AssignmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAssignmentService(db *sql.DB, m repomanager.RepositoryManager) *AssignmentService {
	return &AssignmentService{db: db, repomanager: m}
}

// List returns assignments scoped by role: admins see everything (optionally
// narrowed to one employee), employees only their own.
func (s *AssignmentService) List(ctx context.Context, v Viewer, employeeID int64) ([]*models.Assignment, error) {
	f := assignments.Filter{}
	if v.IsAdmin() {
		f.EmployeeID = employeeID
	} else {
		f.EmployeeID = v.UserID
	}
	return s.repomanager.Assignments(s.db).List(ctx, f)
}

func (s *AssignmentService) Get(ctx context.Context, v Viewer, id int64) (*models.Assignment, error) {
	a, err := s.repomanager.Assignments(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsAdmin() && a.EmployeeID != v.UserID {
		return nil, common.ErrorForbidden
	}
	return a, nil
}

// Create records the assignment, marks the asset ASSIGNED, and notifies the
// employee.
func (s *AssignmentService) Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error) {
	if a.Status == "" {
		a.Status = models.AssignmentAssigned
	}
	if a.DateAssigned.IsZero() {
		a.DateAssigned = time.Now()
	}

	created, err := s.repomanager.Assignments(s.db).Create(ctx, a)
	if err != nil {
		return nil, err
	}
	if err := s.repomanager.Assets(s.db).UpdateStatus(ctx, created.AssetID, models.AssetAssigned); err != nil {
		return nil, err
	}

	full, err := s.repomanager.Assignments(s.db).Get(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	_ = notify(ctx, s.repomanager, s.db, full.EmployeeID, models.NotifAssetAssigned,
		"Asset assigned",
		fmt.Sprintf("%s (%s) was assigned to you.", full.AssetName, full.AssetSerial),
		"assignment", full.ID)

	return full, nil
}

// Update applies an admin edit. Reassignment notifies the new employee; a
// return recorded via date_returned or status releases the asset and
// notifies the employee.
func (s *AssignmentService) Update(ctx context.Context, a *models.Assignment) (*models.Assignment, error) {
	repo := s.repomanager.Assignments(s.db)
	old, err := repo.Get(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	markedReturned := false
	if old.DateReturned == nil && a.DateReturned != nil {
		markedReturned = true
	}
	if a.Status == models.AssignmentReturned && old.Status != models.AssignmentReturned {
		markedReturned = true
		if a.DateReturned == nil {
			now := time.Now()
			a.DateReturned = &now
		}
	}

	if err := repo.Update(ctx, a); err != nil {
		return nil, err
	}
	full, err := repo.Get(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	if full.EmployeeID != old.EmployeeID {
		_ = notify(ctx, s.repomanager, s.db, full.EmployeeID, models.NotifAssetAssigned,
			"Asset assigned",
			fmt.Sprintf("%s (%s) was assigned to you.", full.AssetName, full.AssetSerial),
			"assignment", full.ID)
	}

	if markedReturned {
		if err := s.repomanager.Assets(s.db).UpdateStatus(ctx, full.AssetID, models.AssetAvailable); err != nil {
			return nil, err
		}
		_ = notify(ctx, s.repomanager, s.db, full.EmployeeID, models.NotifAssignmentReturned,
			"Asset returned",
			fmt.Sprintf("%s (%s) was marked as returned.", full.AssetName, full.AssetSerial),
			"assignment", full.ID)
	}

	return full, nil
}

func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Assignments(s.db).Delete(ctx, id)
}

// RequestReturn lets the owning employee flag an assignment for return.
// Admins are notified; admins themselves cannot use this path.
func (s *AssignmentService) RequestReturn(ctx context.Context, v Viewer, id int64, note string) (*models.Assignment, error) {
	if v.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	repo := s.repomanager.Assignments(s.db)
	a, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.EmployeeID != v.UserID {
		return nil, common.ErrorForbidden
	}
	if a.Returned() {
		return nil, fmt.Errorf("%w: already returned", common.ErrorValidation)
	}

	now := time.Now()
	a.Status = models.AssignmentReturnRequested
	a.ReturnRequestedAt = &now
	a.ReturnNote = note
	if err := repo.Update(ctx, a); err != nil {
		return nil, err
	}
	full, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("%s requested return for %s (%s).", full.EmployeeName, full.AssetName, full.AssetSerial)
	if note != "" {
		msg += " Note: " + note
	}
	_ = notifyAdmins(ctx, s.repomanager, s.db, models.NotifTicketUpdated,
		"Return requested", msg, "assignment", full.ID)

	return full, nil
}

// ConfirmReturn lets an admin close out a requested return: the asset goes
// back to AVAILABLE and the employee is notified.
func (s *AssignmentService) ConfirmReturn(ctx context.Context, v Viewer, id int64) (*models.Assignment, error) {
	if !v.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	repo := s.repomanager.Assignments(s.db)
	a, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Returned() {
		return nil, fmt.Errorf("%w: already returned", common.ErrorValidation)
	}

	now := time.Now()
	a.DateReturned = &now
	a.Status = models.AssignmentReturned
	a.ReturnedAt = &now
	a.ReturnedByID = &v.UserID
	if err := repo.Update(ctx, a); err != nil {
		return nil, err
	}

	if err := s.repomanager.Assets(s.db).UpdateStatus(ctx, a.AssetID, models.AssetAvailable); err != nil {
		return nil, err
	}

	full, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = notify(ctx, s.repomanager, s.db, full.EmployeeID, models.NotifAssignmentReturned,
		"Return confirmed",
		fmt.Sprintf("Admin confirmed return for %s (%s).", full.AssetName, full.AssetSerial),
		"assignment", full.ID)

	return full, nil
}
