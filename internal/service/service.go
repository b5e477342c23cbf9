package service

import (
	"context"

	"showroom-backend/internal/domain"
)

type AuthService interface {
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error)
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*domain.Employee, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, in CreateVehicleInput) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListActiveVehicles(ctx context.Context) ([]domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, in UpdateVehicleInput) (*domain.Vehicle, error)
	DeactivateVehicle(ctx context.Context, id int64) error
	ActivateVehicle(ctx context.Context, id int64) error
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	GetCustomerByUsername(ctx context.Context, username string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, in UpdateProfileInput) (*domain.Customer, error)
	DeactivateCustomer(ctx context.Context, id int64) error
}

type EmployeeService interface {
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in UpdateProfileInput) (*domain.Employee, error)
	DeactivateEmployee(ctx context.Context, id int64) error
}

// RequestService owns the request lifecycle and every vehicle availability
// transition. Each mutating method is one atomic unit of work.
type RequestService interface {
	CreatePurchaseRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error)
	CreateServiceRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error)
	CreateInspectionRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error)
	AcceptRequest(ctx context.Context, requestID int64, employeeUsername string) (*domain.Request, error)
	RejectRequest(ctx context.Context, requestID int64, employeeUsername string) (*domain.Request, error)

	GetRequestByID(ctx context.Context, requestID int64) (*domain.Request, error)
	GetAllRequests(ctx context.Context) ([]domain.Request, error)
	GetRequestsByCustomerID(ctx context.Context, customerID int64) ([]domain.Request, error)
	GetRequestsByCustomerUsername(ctx context.Context, customerUsername string) ([]domain.Request, error)
}

type EmailService interface {
	SendRequestReceived(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string) error
	SendRequestDecision(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string, accepted bool) error
	SendPendingRequestsReminder(ctx context.Context, managerEmail string, pendingCount int) error
}
