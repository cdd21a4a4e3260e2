package models

import "time"

// Asset lifecycle statuses.
const (
	AssetAvailable = "AVAILABLE"
	AssetAssigned  = "ASSIGNED"
	AssetRepair    = "REPAIR"
	AssetRetired   = "RETIRED"
)

type Asset struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	SerialNumber string     `json:"serial_number"`
	Status       string     `json:"status"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

// Label returns the display form used in notification messages,
// e.g. "MacBook Pro (SN-0042)".
func (a *Asset) Label() string {
	return a.Name + " (" + a.SerialNumber + ")"
}
