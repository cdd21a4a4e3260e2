package models

import "time"

// Repair ticket statuses.
const (
	TicketOpen       = "OPEN"
	TicketInProgress = "IN_PROGRESS"
	TicketResolved   = "RESOLVED"
	TicketClosed     = "CLOSED"
)

type RepairTicket struct {
	ID                   int64      `json:"id"`
	AssetID              int64      `json:"asset"`
	Issue                string     `json:"issue"`
	Status               string     `json:"status"`
	AssignedTechnicianID *int64     `json:"assigned_technician"`
	CreatedByID          int64      `json:"created_by"`
	CreatedAt            time.Time  `json:"created_at"`
	ResolutionNote       string     `json:"resolution_note"`
	ResolvedAt           *time.Time `json:"resolved_at"`
	ResolvedByID         *int64     `json:"resolved_by"`

	// Denormalized display fields filled by the repository joins.
	AssetName      string `json:"asset_name,omitempty"`
	AssetSerial    string `json:"asset_serial,omitempty"`
	TechnicianName string `json:"technician_name,omitempty"`
	CreatedByName  string `json:"created_by_name,omitempty"`
}
