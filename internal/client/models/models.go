// Package models holds the client's view of the backend records. Fields
// mirror the JSON the API emits; only what the terminal views render is kept.
package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	User
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Asset struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	SerialNumber string  `json:"serial_number"`
	Status       string  `json:"status"`
	PurchaseDate *string `json:"purchase_date"`
}

type InventoryItem struct {
	ID        int64  `json:"id"`
	ItemType  string `json:"item_type"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// LowStock reports whether the item needs restocking.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.Threshold
}

type Assignment struct {
	ID           int64   `json:"id"`
	AssetID      int64   `json:"asset"`
	EmployeeID   int64   `json:"employee"`
	AssetName    string  `json:"asset_name"`
	AssetSerial  string  `json:"asset_serial"`
	EmployeeName string  `json:"employee_name"`
	DateAssigned string  `json:"date_assigned"`
	DateReturned *string `json:"date_returned"`
	Status       string  `json:"status"`
	ReturnNote   string  `json:"return_note,omitempty"`
}

type RepairTicket struct {
	ID             int64     `json:"id"`
	AssetID        int64     `json:"asset"`
	AssetName      string    `json:"asset_name"`
	Issue          string    `json:"issue"`
	Status         string    `json:"status"`
	TechnicianID   *int64    `json:"assigned_technician"`
	TechnicianName string    `json:"technician_name"`
	CreatedByID    *int64    `json:"created_by"`
	CreatedByName  string    `json:"created_by_name"`
	CreatedAt      time.Time `json:"created_at"`
	ResolutionNote string    `json:"resolution_note,omitempty"`
}

type Notification struct {
	ID         int64      `json:"id"`
	Type       string     `json:"notif_type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	EntityType string     `json:"entity_type"`
	EntityID   *int64     `json:"entity_id"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRead reports whether the notification was opened.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	Totals struct {
		AssetsTotal         int `json:"assets_total"`
		InventoryItemsTotal int `json:"inventory_items_total"`
		OpenTickets         int `json:"open_tickets"`
		AssignedAssets      int `json:"assigned_assets"`
	} `json:"totals"`
	AssetByStatus []StatusCount `json:"asset_by_status"`
}

type RecentActivity struct {
	Tickets     []*RepairTicket `json:"tickets"`
	Assignments []*Assignment   `json:"assignments"`
}

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}
