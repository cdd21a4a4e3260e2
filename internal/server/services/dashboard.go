package services

import (
	"context"
	"database/sql"

	"github.com/krishnapriya5647/smart-asset-system/internal/server/models"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/assignments"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/repomanager"
	"github.com/krishnapriya5647/smart-asset-system/internal/server/repositories/tickets"
)

// StatusCount is one slice of the asset-by-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardStats is the landing-page summary payload.
type DashboardStats struct {
	Totals struct {
		AssetsTotal         int `json:"assets_total"`
		InventoryItemsTotal int `json:"inventory_items_total"`
		OpenTickets         int `json:"open_tickets"`
		AssignedAssets      int `json:"assigned_assets"`
	} `json:"totals"`
	AssetByStatus []StatusCount `json:"asset_by_status"`
}

// RecentActivity bundles the viewer's latest tickets and assignments.
type RecentActivity struct {
	Tickets     []*models.RepairTicket `json:"tickets"`
	Assignments []*models.Assignment   `json:"assignments"`
}

// DashboardService aggregates counts and recent records for the landing page.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.repomanager.Assets(s.db).CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{AssetByStatus: []StatusCount{}}
	// Stable order across the known statuses.
	for _, status := range []string{models.AssetAssigned, models.AssetAvailable, models.AssetRepair, models.AssetRetired} {
		if n, ok := counts[status]; ok {
			stats.AssetByStatus = append(stats.AssetByStatus, StatusCount{Status: status, Count: n})
		}
	}
	for _, n := range counts {
		stats.Totals.AssetsTotal += n
	}
	stats.Totals.AssignedAssets = counts[models.AssetAssigned]

	if stats.Totals.InventoryItemsTotal, err = s.repomanager.Inventory(s.db).Count(ctx); err != nil {
		return nil, err
	}
	if stats.Totals.OpenTickets, err = s.repomanager.Tickets(s.db).CountByStatus(ctx, models.TicketOpen); err != nil {
		return nil, err
	}

	return stats, nil
}

// Recent returns the viewer's latest tickets and assignments, role-scoped
// the same way the list endpoints are.
func (s *DashboardService) Recent(ctx context.Context, v Viewer, limit int) (*RecentActivity, error) {
	if limit <= 0 {
		limit = 5
	}

	tf := tickets.Filter{Limit: limit}
	af := assignments.Filter{Limit: limit}
	if !v.IsAdmin() {
		assetIDs, err := s.repomanager.Assignments(s.db).AssetIDsForEmployee(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		tf.InvolvedUser = v.UserID
		tf.AssetIDs = assetIDs
		af.EmployeeID = v.UserID
	}

	ts, err := s.repomanager.Tickets(s.db).List(ctx, tf)
	if err != nil {
		return nil, err
	}
	as, err := s.repomanager.Assignments(s.db).List(ctx, af)
	if err != nil {
		return nil, err
	}

	return &RecentActivity{Tickets: ts, Assignments: as}, nil
}
