package domain

import "time"

type VehicleAvailability string

const (
	VehicleAvailable VehicleAvailability = "AVAILABLE"
	VehicleReserved  VehicleAvailability = "RESERVED"
	VehicleSold      VehicleAvailability = "SOLD"
)

type VehicleCondition string

const (
	VehicleConditionNew  VehicleCondition = "NEW"
	VehicleConditionUsed VehicleCondition = "USED"
)

// Vehicle is a unit of showroom inventory. Availability and OwnerID are
// written only by the request workflow; everything else belongs to the
// inventory CRUD service. Version backs optimistic locking: every persisted
// update must carry the version it read, and bumps it by one on success.
type Vehicle struct {
	ID             int64               `json:"id"`
	VIN            string              `json:"vin"`
	Make           string              `json:"make"`
	Model          string              `json:"model"`
	ProductionYear int                 `json:"production_year"`
	PriceCents     int64               `json:"price_cents"`
	Condition      VehicleCondition    `json:"condition"`
	Availability   VehicleAvailability `json:"availability"`
	OwnerID        *int64              `json:"owner_id,omitempty"`
	Version        int64               `json:"version"`
	Active         bool                `json:"active"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
