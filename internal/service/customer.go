package service

import (
	"context"
	"errors"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
)

// UpdateProfileInput carries partial profile updates shared by customer and
// employee accounts; nil fields are left alone.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *domain.Address
	Position    *domain.EmployeePosition // employees only
}

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.store.Customers().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("customer", id)
	}
	return c, err
}

func (s *customerService) GetCustomerByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	c, err := s.store.Customers().GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("customer", username)
	}
	return c, err
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, in UpdateProfileInput) (*domain.Customer, error) {
	var updated *domain.Customer
	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		c, err := r.Customers().GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("customer", id)
		}
		if err != nil {
			return err
		}

		applyProfile(&c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Address, in)

		if err := r.Customers().Update(ctx, c); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return conflict("email %s is already in use", c.Email)
			}
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *customerService) DeactivateCustomer(ctx context.Context, id int64) error {
	err := s.store.Customers().SetActive(ctx, id, false)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("customer", id)
	}
	return err
}

func applyProfile(firstName, lastName, email, phone *string, addr *domain.Address, in UpdateProfileInput) {
	if in.FirstName != nil {
		*firstName = *in.FirstName
	}
	if in.LastName != nil {
		*lastName = *in.LastName
	}
	if in.Email != nil {
		*email = *in.Email
	}
	if in.PhoneNumber != nil {
		*phone = *in.PhoneNumber
	}
	if in.Address != nil {
		*addr = *in.Address
	}
}
