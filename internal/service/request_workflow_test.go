package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
	"showroom-backend/internal/service"
)

func activeCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        1,
		Username:  "alice",
		FirstName: "Alice",
		Email:     "alice@test.com",
		Active:    true,
	}
}

func availableVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           2,
		VIN:          "1HGBH41JXMN109186",
		Make:         "Honda",
		Model:        "Civic",
		Availability: domain.VehicleAvailable,
		Version:      3,
		Active:       true,
	}
}

func TestRequestService_CreatePurchaseRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := newTestStore()
		emailSvc := new(MockEmailService)
		svc := service.NewRequestService(store, emailSvc)

		vehicle := availableVehicle()
		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.vehicles.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Availability == domain.VehicleReserved
		})).Return(nil)
		store.requests.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)
		emailSvc.On("SendRequestReceived", ctx, "alice@test.com", "Alice", domain.RequestTypePurchase, vehicle.VIN).Return(nil)

		req, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "please call me")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
		assert.Equal(t, domain.RequestTypePurchase, req.Type)
		assert.Equal(t, int64(1), req.CustomerID)
		assert.Equal(t, vehicle.VIN, req.VehicleVIN)
		store.vehicles.AssertExpectations(t)
		store.requests.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Vehicle Not Available", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleReserved
		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)

		_, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "")
		var stateErr *service.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
		store.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle Not Found", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(nil, repository.ErrNotFound)

		_, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "")
		var notFoundErr *service.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("Inactive Customer", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		customer := activeCustomer()
		customer.Active = false
		store.customers.On("GetByUsername", ctx, "alice").Return(customer, nil)

		_, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "")
		var stateErr *service.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
		store.vehicles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent Writer Wins Version Race", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(availableVehicle(), nil)
		store.vehicles.On("Update", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(repository.ErrVersionConflict)

		_, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "")
		var conflictErr *service.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		store.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Email Failure Does Not Fail Workflow", func(t *testing.T) {
		store := newTestStore()
		emailSvc := new(MockEmailService)
		svc := service.NewRequestService(store, emailSvc)

		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(availableVehicle(), nil)
		store.vehicles.On("Update", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(nil)
		store.requests.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)
		emailSvc.On("SendRequestReceived", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("sendgrid down"))

		req, err := svc.CreatePurchaseRequest(ctx, "alice", 2, "")
		assert.NoError(t, err)
		assert.NotNil(t, req)
	})
}

func TestRequestService_CreateServiceRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Can Request Service", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		ownerID := int64(1)
		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleSold
		vehicle.OwnerID = &ownerID
		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.requests.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)

		req, err := svc.CreateServiceRequest(ctx, "alice", 2, "brakes squeal")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestTypeService, req.Type)
		// Availability is untouched by non-purchase requests.
		store.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non-Owner Is Refused", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		otherID := int64(99)
		vehicle := availableVehicle()
		vehicle.OwnerID = &otherID
		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)

		_, err := svc.CreateServiceRequest(ctx, "alice", 2, "")
		var stateErr *service.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
	})
}

func TestRequestService_CreateInspectionRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("No Ownership Required", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		vehicle := availableVehicle()
		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.requests.On("Create", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)

		req, err := svc.CreateInspectionRequest(ctx, "alice", 2, "pre-purchase check")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestTypeInspection, req.Type)
		store.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func pendingPurchaseRequest() *domain.Request {
	return &domain.Request{
		ID:         7,
		CustomerID: 1,
		VehicleID:  2,
		Type:       domain.RequestTypePurchase,
		Status:     domain.RequestStatusPending,
	}
}

func decisionEmployee() *domain.Employee {
	return &domain.Employee{
		ID:       5,
		Username: "bob",
		Position: domain.PositionEmployee,
		Active:   true,
	}
}

func TestRequestService_AcceptRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Purchase Accepted Sells Vehicle", func(t *testing.T) {
		store := newTestStore()
		emailSvc := new(MockEmailService)
		svc := service.NewRequestService(store, emailSvc)

		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleReserved
		store.requests.On("GetByID", ctx, int64(7)).Return(pendingPurchaseRequest(), nil)
		store.employees.On("GetByUsername", ctx, "bob").Return(decisionEmployee(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.vehicles.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Availability == domain.VehicleSold && v.OwnerID != nil && *v.OwnerID == int64(1)
		})).Return(nil)
		store.requests.On("Update", ctx, mock.MatchedBy(func(r *domain.Request) bool {
			return r.Status == domain.RequestStatusAccepted && r.AssignedEmployeeID != nil && *r.AssignedEmployeeID == int64(5)
		})).Return(nil)
		store.customers.On("GetByID", ctx, int64(1)).Return(activeCustomer(), nil)
		emailSvc.On("SendRequestDecision", ctx, "alice@test.com", "Alice", domain.RequestTypePurchase, mock.Anything, true).Return(nil)

		req, err := svc.AcceptRequest(ctx, 7, "bob")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusAccepted, req.Status)
		store.vehicles.AssertExpectations(t)
		store.requests.AssertExpectations(t)
	})

	t.Run("Already Decided", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		decided := pendingPurchaseRequest()
		decided.Status = domain.RequestStatusAccepted
		store.requests.On("GetByID", ctx, int64(7)).Return(decided, nil)

		_, err := svc.AcceptRequest(ctx, 7, "bob")
		var stateErr *service.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
		assert.Contains(t, err.Error(), "not in PENDING state")
		store.requests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle No Longer Reserved", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleSold
		store.requests.On("GetByID", ctx, int64(7)).Return(pendingPurchaseRequest(), nil)
		store.employees.On("GetByUsername", ctx, "bob").Return(decisionEmployee(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)

		_, err := svc.AcceptRequest(ctx, 7, "bob")
		var conflictErr *service.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		assert.Contains(t, err.Error(), "no longer RESERVED")
		store.requests.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non-Purchase Leaves Vehicle Alone", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		req := pendingPurchaseRequest()
		req.Type = domain.RequestTypeInspection
		store.requests.On("GetByID", ctx, int64(7)).Return(req, nil)
		store.employees.On("GetByUsername", ctx, "bob").Return(decisionEmployee(), nil)
		store.requests.On("Update", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)
		store.customers.On("GetByID", ctx, int64(1)).Return(activeCustomer(), nil)

		decided, err := svc.AcceptRequest(ctx, 7, "bob")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusAccepted, decided.Status)
		store.vehicles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestRequestService_RejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Purchase Rejected Releases Reservation", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleReserved
		store.requests.On("GetByID", ctx, int64(7)).Return(pendingPurchaseRequest(), nil)
		store.employees.On("GetByUsername", ctx, "bob").Return(decisionEmployee(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.vehicles.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Availability == domain.VehicleAvailable && v.OwnerID == nil
		})).Return(nil)
		store.requests.On("Update", ctx, mock.MatchedBy(func(r *domain.Request) bool {
			return r.Status == domain.RequestStatusRejected
		})).Return(nil)
		store.customers.On("GetByID", ctx, int64(1)).Return(activeCustomer(), nil)

		req, err := svc.RejectRequest(ctx, 7, "bob")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusRejected, req.Status)
		store.vehicles.AssertExpectations(t)
	})

	t.Run("Externally Changed Vehicle Is Untouched", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		vehicle := availableVehicle()
		vehicle.Availability = domain.VehicleSold
		store.requests.On("GetByID", ctx, int64(7)).Return(pendingPurchaseRequest(), nil)
		store.employees.On("GetByUsername", ctx, "bob").Return(decisionEmployee(), nil)
		store.vehicles.On("GetByID", ctx, int64(2)).Return(vehicle, nil)
		store.requests.On("Update", ctx, mock.AnythingOfType("*domain.Request")).Return(nil)
		store.customers.On("GetByID", ctx, int64(1)).Return(activeCustomer(), nil)

		req, err := svc.RejectRequest(ctx, 7, "bob")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusRejected, req.Status)
		store.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Request Not Found", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.requests.On("GetByID", ctx, int64(7)).Return(nil, repository.ErrNotFound)

		_, err := svc.RejectRequest(ctx, 7, "bob")
		var notFoundErr *service.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestRequestService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("Get By ID Maps Not Found", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.requests.On("GetByID", ctx, int64(42)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetRequestByID(ctx, 42)
		var notFoundErr *service.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("List By Unknown Customer", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.customers.On("GetByID", ctx, int64(42)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetRequestsByCustomerID(ctx, 42)
		var notFoundErr *service.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("List By Username", func(t *testing.T) {
		store := newTestStore()
		svc := service.NewRequestService(store, nil)

		store.customers.On("GetByUsername", ctx, "alice").Return(activeCustomer(), nil)
		store.requests.On("ListByCustomer", ctx, int64(1)).Return([]domain.Request{{ID: 7}}, nil)

		requests, err := svc.GetRequestsByCustomerUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}
