package repository

import (
	"context"
	"errors"

	"showroom-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict is returned when an optimistic update matched no
	// row because the version read at load time is stale.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicate is returned when a unique constraint (VIN, username,
	// email) would be violated.
	ErrDuplicate = errors.New("duplicate record")
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	ExistsByVIN(ctx context.Context, vin string) (bool, error)
	ListActive(ctx context.Context) ([]domain.Vehicle, error)
	ListActiveByAvailability(ctx context.Context, availability domain.VehicleAvailability) ([]domain.Vehicle, error)
	// Update persists all mutable fields conditioned on v.Version and bumps
	// the version on success; returns ErrVersionConflict on a stale version.
	Update(ctx context.Context, v *domain.Vehicle) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	Update(ctx context.Context, req *domain.Request) error
	List(ctx context.Context) ([]domain.Request, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Request, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Request, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Request, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByUsername(ctx context.Context, username string) (*domain.Customer, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListByPosition(ctx context.Context, position domain.EmployeePosition) ([]domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// Repositories gives access to every repository over one backing handle,
// either the shared pool or a single transaction.
type Repositories interface {
	Vehicles() VehicleRepository
	Requests() RequestRepository
	Customers() CustomerRepository
	Employees() EmployeeRepository
}

// TxScope runs fn inside one database transaction. Every repository
// operation performed through the passed Repositories joins that
// transaction; an error (or panic) from fn rolls everything back.
type TxScope interface {
	Execute(ctx context.Context, fn func(r Repositories) error) error
}

// Store is what services depend on: plain reads plus transactional writes.
type Store interface {
	Repositories
	TxScope
}
