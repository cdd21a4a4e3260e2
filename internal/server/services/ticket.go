package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/krishnapriya5647/smart-asset-system/internal/common"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/tickets"
)

// TicketService implements repair-ticket CRUD plus the technician/admin
// resolution handshake (mark-done, approve-close), with notification fan-out.
type TicketService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTicketService(db *sql.DB, m repomanager.RepositoryManager) *TicketService {
	return &TicketService{db: db, repomanager: m}
}

// List is scoped by role: admins see everything (optionally narrowed to one
// employee's involvement); employees see tickets they created, are assigned
// to, or that concern an asset assigned to them.
func (s *TicketService) List(ctx context.Context, v Viewer, status string, employeeID int64) ([]*models.RepairTicket, error) {
	f := tickets.Filter{Status: status}

	scopeUser := int64(0)
	if v.IsAdmin() {
		scopeUser = employeeID
	} else {
		scopeUser = v.UserID
	}

	if scopeUser != 0 {
		assetIDs, err := s.repomanager.Assignments(s.db).AssetIDsForEmployee(ctx, scopeUser)
		if err != nil {
			return nil, err
		}
		f.InvolvedUser = scopeUser
		f.AssetIDs = assetIDs
	}

	return s.repomanager.Tickets(s.db).List(ctx, f)
}

func (s *TicketService) Get(ctx context.Context, id int64) (*models.RepairTicket, error) {
	return s.repomanager.Tickets(s.db).Get(ctx, id)
}

// Create opens a ticket. An employee cannot pick a technician and the admins
// are notified; an admin may assign a technician directly, who is notified.
func (s *TicketService) Create(ctx context.Context, v Viewer, t *models.RepairTicket) (*models.RepairTicket, error) {
	t.CreatedByID = v.UserID
	if t.Status == "" {
		t.Status = models.TicketOpen
	}
	if !v.IsAdmin() {
		t.AssignedTechnicianID = nil
	}

	created, err := s.repomanager.Tickets(s.db).Create(ctx, t)
	if err != nil {
		return nil, err
	}
	full, err := s.repomanager.Tickets(s.db).Get(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	if !v.IsAdmin() {
		_ = notifyAdmins(ctx, s.repomanager, s.db, models.NotifTicketCreated,
			"New ticket created",
			fmt.Sprintf("%s created a ticket for %s (%s).", full.CreatedByName, full.AssetName, full.AssetSerial),
			"ticket", full.ID)
	} else if full.AssignedTechnicianID != nil {
		_ = notify(ctx, s.repomanager, s.db, *full.AssignedTechnicianID, models.NotifTicketUpdated,
			"Ticket assigned",
			fmt.Sprintf("You were assigned a ticket for %s (%s).", full.AssetName, full.AssetSerial),
			"ticket", full.ID)
	}

	return full, nil
}

// Update applies an admin edit. A new technician or a status change each
// notify the affected user.
func (s *TicketService) Update(ctx context.Context, v Viewer, t *models.RepairTicket) (*models.RepairTicket, error) {
	if !v.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	repo := s.repomanager.Tickets(s.db)
	old, err := repo.Get(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	// Preserve immutable creation fields on full updates.
	t.CreatedByID = old.CreatedByID
	t.CreatedAt = old.CreatedAt

	if err := repo.Update(ctx, t); err != nil {
		return nil, err
	}
	full, err := repo.Get(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	assigneeChanged := full.AssignedTechnicianID != nil &&
		(old.AssignedTechnicianID == nil || *old.AssignedTechnicianID != *full.AssignedTechnicianID)
	if assigneeChanged {
		_ = notify(ctx, s.repomanager, s.db, *full.AssignedTechnicianID, models.NotifTicketUpdated,
			"Ticket assigned",
			fmt.Sprintf("You were assigned a ticket for %s (%s).", full.AssetName, full.AssetSerial),
			"ticket", full.ID)
	}

	if full.Status != old.Status {
		_ = notify(ctx, s.repomanager, s.db, full.CreatedByID, models.NotifTicketUpdated,
			"Ticket updated",
			fmt.Sprintf("Ticket status changed: %s -> %s", old.Status, full.Status),
			"ticket", full.ID)
	}

	return full, nil
}

func (s *TicketService) Delete(ctx context.Context, v Viewer, id int64) error {
	if !v.IsAdmin() {
		return common.ErrorForbidden
	}
	return s.repomanager.Tickets(s.db).Delete(ctx, id)
}

// MarkDone lets the assigned technician resolve a ticket with an optional
// note. The creator and all admins (minus the actor) are notified.
func (s *TicketService) MarkDone(ctx context.Context, v Viewer, id int64, note string) (*models.RepairTicket, error) {
	repo := s.repomanager.Tickets(s.db)
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status == models.TicketResolved || t.Status == models.TicketClosed {
		return nil, fmt.Errorf("%w: ticket is already resolved/closed", common.ErrorValidation)
	}
	if t.AssignedTechnicianID == nil {
		return nil, fmt.Errorf("%w: no technician assigned", common.ErrorValidation)
	}
	if *t.AssignedTechnicianID != v.UserID && !v.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	now := time.Now()
	t.Status = models.TicketResolved
	t.ResolutionNote = note
	t.ResolvedAt = &now
	t.ResolvedByID = &v.UserID
	if err := repo.Update(ctx, t); err != nil {
		return nil, err
	}
	full, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	recipients := map[int64]struct{}{full.CreatedByID: {}}
	adminIDs, err := s.repomanager.Users(s.db).ListAdminIDs(ctx)
	if err == nil {
		for _, id := range adminIDs {
			recipients[id] = struct{}{}
		}
	}
	delete(recipients, v.UserID)

	msg := fmt.Sprintf("Work marked done for %s (%s).", full.AssetName, full.AssetSerial)
	if note != "" {
		msg += " Note: " + note
	}
	for uid := range recipients {
		_ = notify(ctx, s.repomanager, s.db, uid, models.NotifTicketUpdated,
			"Ticket resolved", msg, "ticket", full.ID)
	}

	return full, nil
}

// ApproveClose lets an admin verify a RESOLVED ticket and close it. The
// creator and the technician are notified.
func (s *TicketService) ApproveClose(ctx context.Context, v Viewer, id int64) (*models.RepairTicket, error) {
	if !v.IsAdmin() {
		return nil, common.ErrorForbidden
	}

	repo := s.repomanager.Tickets(s.db)
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status == models.TicketClosed {
		return nil, fmt.Errorf("%w: ticket is already closed", common.ErrorValidation)
	}
	if t.Status != models.TicketResolved {
		return nil, fmt.Errorf("%w: ticket must be RESOLVED before closing", common.ErrorValidation)
	}

	t.Status = models.TicketClosed
	if err := repo.Update(ctx, t); err != nil {
		return nil, err
	}
	full, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	recipients := map[int64]struct{}{full.CreatedByID: {}}
	if full.AssignedTechnicianID != nil {
		recipients[*full.AssignedTechnicianID] = struct{}{}
	}
	for uid := range recipients {
		_ = notify(ctx, s.repomanager, s.db, uid, models.NotifTicketUpdated,
			"Ticket closed",
			fmt.Sprintf("Admin verified and closed the ticket for %s (%s).", full.AssetName, full.AssetSerial),
			"ticket", full.ID)
	}

	return full, nil
}
