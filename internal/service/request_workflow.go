package service

import (
	"context"
	"errors"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/logger"
	"showroom-backend/internal/repository"
)

type requestService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewRequestService(store repository.Store, emailSvc EmailService) RequestService {
	return &requestService{store: store, emailSvc: emailSvc}
}

// CreatePurchaseRequest reserves the vehicle and records a PENDING purchase
// request in one transaction. A vehicle that exists but is not AVAILABLE is
// an invalid-state error, not a not-found; a concurrent writer that wins
// the version race turns into a conflict error. Either way nothing is
// persisted.
func (s *requestService) CreatePurchaseRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error) {
	var created *domain.Request
	var customer *domain.Customer
	var vehicle *domain.Vehicle

	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		var err error
		customer, err = r.Customers().GetByUsername(ctx, customerUsername)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("customer", customerUsername)
		}
		if err != nil {
			return err
		}
		if !customer.Active {
			return invalidState("customer %s is not active", customerUsername)
		}

		vehicle, err = r.Vehicles().GetByID(ctx, vehicleID)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("vehicle", vehicleID)
		}
		if err != nil {
			return err
		}
		if !vehicle.Active || vehicle.Availability != domain.VehicleAvailable {
			return invalidState("vehicle %s is not available for purchase", vehicle.VIN)
		}

		vehicle.Availability = domain.VehicleReserved
		if err := r.Vehicles().Update(ctx, vehicle); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return conflict("vehicle %s was modified concurrently", vehicle.VIN)
			}
			return err
		}

		created = &domain.Request{
			CustomerID:    customer.ID,
			VehicleID:     vehicle.ID,
			Type:          domain.RequestTypePurchase,
			Status:        domain.RequestStatusPending,
			CustomerNotes: notes,
		}
		return r.Requests().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	created.CustomerUsername = customer.Username
	created.VehicleVIN = vehicle.VIN
	s.notifyReceived(ctx, customer, created)
	return created, nil
}

// CreateServiceRequest requires that the requesting customer already owns
// the vehicle. Vehicle availability is untouched.
func (s *requestService) CreateServiceRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error) {
	return s.createNonPurchase(ctx, customerUsername, vehicleID, notes, domain.RequestTypeService, true)
}

// CreateInspectionRequest does not require ownership: any customer may
// ask for an inspection of any vehicle.
func (s *requestService) CreateInspectionRequest(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error) {
	return s.createNonPurchase(ctx, customerUsername, vehicleID, notes, domain.RequestTypeInspection, false)
}

func (s *requestService) createNonPurchase(ctx context.Context, customerUsername string, vehicleID int64, notes string, reqType domain.RequestType, requireOwnership bool) (*domain.Request, error) {
	var created *domain.Request
	var customer *domain.Customer
	var vehicle *domain.Vehicle

	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		var err error
		customer, err = r.Customers().GetByUsername(ctx, customerUsername)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("customer", customerUsername)
		}
		if err != nil {
			return err
		}

		vehicle, err = r.Vehicles().GetByID(ctx, vehicleID)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("vehicle", vehicleID)
		}
		if err != nil {
			return err
		}

		if requireOwnership {
			if vehicle.OwnerID == nil || *vehicle.OwnerID != customer.ID {
				return invalidState("vehicle %s is not owned by customer %s", vehicle.VIN, customerUsername)
			}
		}

		created = &domain.Request{
			CustomerID:    customer.ID,
			VehicleID:     vehicle.ID,
			Type:          reqType,
			Status:        domain.RequestStatusPending,
			CustomerNotes: notes,
		}
		return r.Requests().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	created.CustomerUsername = customer.Username
	created.VehicleVIN = vehicle.VIN
	s.notifyReceived(ctx, customer, created)
	return created, nil
}

// AcceptRequest moves a PENDING request to ACCEPTED. For purchase requests
// the vehicle must still be RESERVED; it then becomes SOLD and owned by the
// requesting customer.
func (s *requestService) AcceptRequest(ctx context.Context, requestID int64, employeeUsername string) (*domain.Request, error) {
	return s.decide(ctx, requestID, employeeUsername, true)
}

// RejectRequest moves a PENDING request to REJECTED. A rejected purchase
// request releases the reservation, but only if the vehicle is still
// RESERVED; a state some other process moved it to is left alone.
func (s *requestService) RejectRequest(ctx context.Context, requestID int64, employeeUsername string) (*domain.Request, error) {
	return s.decide(ctx, requestID, employeeUsername, false)
}

func (s *requestService) decide(ctx context.Context, requestID int64, employeeUsername string, accept bool) (*domain.Request, error) {
	var updated *domain.Request
	var customer *domain.Customer

	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		req, err := r.Requests().GetByID(ctx, requestID)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("request", requestID)
		}
		if err != nil {
			return err
		}

		if req.Status != domain.RequestStatusPending {
			return invalidState("request %d is not in PENDING state", requestID)
		}

		employee, err := r.Employees().GetByUsername(ctx, employeeUsername)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("employee", employeeUsername)
		}
		if err != nil {
			return err
		}

		target := domain.RequestStatusAccepted
		if !accept {
			target = domain.RequestStatusRejected
		}
		if !req.Status.CanTransitionTo(target) {
			return invalidState("request %d cannot transition from %s to %s", requestID, req.Status, target)
		}
		req.Status = target
		req.AssignedEmployeeID = &employee.ID
		req.AssignedEmployeeUsername = employee.Username

		if req.Type == domain.RequestTypePurchase {
			vehicle, err := r.Vehicles().GetByID(ctx, req.VehicleID)
			if errors.Is(err, repository.ErrNotFound) {
				return notFound("vehicle", req.VehicleID)
			}
			if err != nil {
				return err
			}

			if accept {
				if vehicle.Availability != domain.VehicleReserved {
					return conflict("vehicle %s is no longer RESERVED, current status: %s", vehicle.VIN, vehicle.Availability)
				}
				vehicle.Availability = domain.VehicleSold
				vehicle.OwnerID = &req.CustomerID
				if err := s.updateVehicle(ctx, r, vehicle); err != nil {
					return err
				}
			} else if vehicle.Availability == domain.VehicleReserved {
				vehicle.Availability = domain.VehicleAvailable
				if err := s.updateVehicle(ctx, r, vehicle); err != nil {
					return err
				}
			}
		}

		if err := r.Requests().Update(ctx, req); err != nil {
			return err
		}

		customer, err = r.Customers().GetByID(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, customer, updated, accept)
	return updated, nil
}

func (s *requestService) updateVehicle(ctx context.Context, r repository.Repositories, v *domain.Vehicle) error {
	if err := r.Vehicles().Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return conflict("vehicle %s was modified concurrently", v.VIN)
		}
		return err
	}
	return nil
}

func (s *requestService) GetRequestByID(ctx context.Context, requestID int64) (*domain.Request, error) {
	req, err := s.store.Requests().GetByID(ctx, requestID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("request", requestID)
	}
	return req, err
}

func (s *requestService) GetAllRequests(ctx context.Context) ([]domain.Request, error) {
	return s.store.Requests().List(ctx)
}

func (s *requestService) GetRequestsByCustomerID(ctx context.Context, customerID int64) ([]domain.Request, error) {
	if _, err := s.store.Customers().GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("customer", customerID)
		}
		return nil, err
	}
	return s.store.Requests().ListByCustomer(ctx, customerID)
}

func (s *requestService) GetRequestsByCustomerUsername(ctx context.Context, customerUsername string) ([]domain.Request, error) {
	customer, err := s.store.Customers().GetByUsername(ctx, customerUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("customer", customerUsername)
		}
		return nil, err
	}
	return s.store.Requests().ListByCustomer(ctx, customer.ID)
}

// Mails go out after the transaction commits and never fail the workflow.
func (s *requestService) notifyReceived(ctx context.Context, customer *domain.Customer, req *domain.Request) {
	if s.emailSvc == nil {
		return
	}
	if err := s.emailSvc.SendRequestReceived(ctx, customer.Email, customer.FirstName, req.Type, req.VehicleVIN); err != nil {
		logger.Warn("Failed to send request-received mail", "request_id", req.ID, "error", err)
	}
}

func (s *requestService) notifyDecision(ctx context.Context, customer *domain.Customer, req *domain.Request, accepted bool) {
	if s.emailSvc == nil || customer == nil {
		return
	}
	if err := s.emailSvc.SendRequestDecision(ctx, customer.Email, customer.FirstName, req.Type, req.VehicleVIN, accepted); err != nil {
		logger.Warn("Failed to send request-decision mail", "request_id", req.ID, "error", err)
	}
}
