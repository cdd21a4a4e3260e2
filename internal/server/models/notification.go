package models

import "time"

// Notification types. Entity type/id are deep-link helpers so a client can
// jump from a notification straight to the owning record.
const (
	NotifInfo               = "INFO"
	NotifAssetAssigned      = "ASSET_ASSIGNED"
	NotifTicketCreated      = "TICKET_CREATED"
	NotifTicketUpdated      = "TICKET_UPDATED"
	NotifAssignmentReturned = "ASSIGNMENT_RETURNED"
)

type Notification struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user"`
	Type       string     `json:"notif_type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	EntityType string     `json:"entity_type"`
	EntityID   *int64     `json:"entity_id"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
