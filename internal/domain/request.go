package domain

import "time"

type RequestType string

const (
	RequestTypePurchase   RequestType = "PURCHASE"
	RequestTypeService    RequestType = "SERVICE"
	RequestTypeInspection RequestType = "INSPECTION"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// CanTransitionTo reports whether s -> to is an allowed status transition.
// The only legal moves are PENDING -> ACCEPTED and PENDING -> REJECTED.
func (s RequestStatus) CanTransitionTo(to RequestStatus) bool {
	return s == RequestStatusPending && to.IsTerminal()
}

// Request is a customer-initiated purchase, service or inspection request
// against a vehicle. Requests are never deleted; a terminal status is the
// end of the record's life.
type Request struct {
	ID                 int64         `json:"id"`
	CustomerID         int64         `json:"customer_id"`
	VehicleID          int64         `json:"vehicle_id"`
	AssignedEmployeeID *int64        `json:"assigned_employee_id,omitempty"`
	Type               RequestType   `json:"request_type"`
	Status             RequestStatus `json:"status"`
	CustomerNotes      string        `json:"customer_notes"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          *time.Time    `json:"updated_at,omitempty"`

	// Display fields populated by joined reads, not persisted on requests.
	CustomerUsername         string `json:"customer_username,omitempty"`
	VehicleVIN               string `json:"vehicle_vin,omitempty"`
	AssignedEmployeeUsername string `json:"assigned_employee_username,omitempty"`
}
