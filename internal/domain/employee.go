package domain

import "time"

type EmployeePosition string

const (
	PositionManager  EmployeePosition = "MANAGER"
	PositionEmployee EmployeePosition = "EMPLOYEE"
)

// Employee is a dealership staff account. Employees handle customer
// requests; managers additionally administer inventory and accounts.
type Employee struct {
	ID           int64            `json:"id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	PhoneNumber  string           `json:"phone_number"`
	Address      Address          `json:"address"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"-"`
	Roles        []string         `json:"roles"`
	Position     EmployeePosition `json:"position"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
