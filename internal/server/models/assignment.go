package models

import "time"

// Assignment statuses. An employee may request a return; the admin confirms
// it, which releases the asset back to AVAILABLE.
const (
	AssignmentAssigned        = "ASSIGNED"
	AssignmentReturnRequested = "RETURN_REQUESTED"
	AssignmentReturned        = "RETURNED"
)

type Assignment struct {
	ID                int64      `json:"id"`
	AssetID           int64      `json:"asset"`
	EmployeeID        int64      `json:"employee"`
	DateAssigned      time.Time  `json:"date_assigned"`
	DateReturned      *time.Time `json:"date_returned"`
	Status            string     `json:"status"`
	ReturnRequestedAt *time.Time `json:"return_requested_at"`
	ReturnNote        string     `json:"return_note"`
	ReturnedAt        *time.Time `json:"returned_at"`
	ReturnedByID      *int64     `json:"returned_by"`

	// Denormalized display fields filled by the repository joins.
	AssetName    string `json:"asset_name,omitempty"`
	AssetSerial  string `json:"asset_serial,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

// Returned reports whether the assignment is finished, either via the legacy
// date_returned field or the newer status value.
func (a *Assignment) Returned() bool {
	return a.DateReturned != nil || a.Status == AssignmentReturned
}
