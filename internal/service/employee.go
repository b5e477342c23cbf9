package service

import (
	"context"
	"errors"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
)

type employeeService struct {
	store repository.Store
}

func NewEmployeeService(store repository.Store) EmployeeService {
	return &employeeService{store: store}
}

func (s *employeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := s.store.Employees().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("employee", id)
	}
	return e, err
}

func (s *employeeService) GetEmployeeByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	e, err := s.store.Employees().GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("employee", username)
	}
	return e, err
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.store.Employees().List(ctx)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, in UpdateProfileInput) (*domain.Employee, error) {
	var updated *domain.Employee
	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		e, err := r.Employees().GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("employee", id)
		}
		if err != nil {
			return err
		}

		applyProfile(&e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber, &e.Address, in)
		if in.Position != nil {
			e.Position = *in.Position
		}

		if err := r.Employees().Update(ctx, e); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return conflict("email %s is already in use", e.Email)
			}
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, id int64) error {
	err := s.store.Employees().SetActive(ctx, id, false)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("employee", id)
	}
	return err
}
