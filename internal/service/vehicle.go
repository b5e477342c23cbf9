package service

import (
	"context"
	"errors"
	"strings"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
)

type CreateVehicleInput struct {
	VIN            string
	Make           string
	Model          string
	ProductionYear int
	PriceCents     int64
	Condition      domain.VehicleCondition
}

// UpdateVehicleInput carries partial updates; nil fields are left alone.
// Availability is exposed here for manual inventory operations such as
// re-listing a SOLD vehicle; the request workflow never calls this path.
type UpdateVehicleInput struct {
	Make           *string
	Model          *string
	ProductionYear *int
	PriceCents     *int64
	Condition      *domain.VehicleCondition
	Availability   *domain.VehicleAvailability
	Active         *bool
}

type vehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{store: store}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, in CreateVehicleInput) (*domain.Vehicle, error) {
	vin := strings.TrimSpace(in.VIN)
	if len(vin) != 17 {
		return nil, invalidState("VIN must be exactly 17 characters, got %d", len(vin))
	}

	exists, err := s.store.Vehicles().ExistsByVIN(ctx, vin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("VIN %s is already in use", vin)
	}

	v := &domain.Vehicle{
		VIN:            vin,
		Make:           strings.TrimSpace(in.Make),
		Model:          strings.TrimSpace(in.Model),
		ProductionYear: in.ProductionYear,
		PriceCents:     in.PriceCents,
		Condition:      in.Condition,
		Availability:   domain.VehicleAvailable,
		Active:         true,
	}
	if err := s.store.Vehicles().Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("VIN %s is already in use", vin)
		}
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.store.Vehicles().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("vehicle", id)
	}
	if err != nil {
		return nil, err
	}
	// Soft-deleted vehicles read as absent outside inventory management.
	if !v.Active {
		return nil, notFound("vehicle", id)
	}
	return v, nil
}

func (s *vehicleService) ListActiveVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles().ListActive(ctx)
}

func (s *vehicleService) ListAvailableVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.store.Vehicles().ListActiveByAvailability(ctx, domain.VehicleAvailable)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id int64, in UpdateVehicleInput) (*domain.Vehicle, error) {
	var updated *domain.Vehicle
	err := s.store.Execute(ctx, func(r repository.Repositories) error {
		v, err := r.Vehicles().GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("vehicle", id)
		}
		if err != nil {
			return err
		}

		if in.Make != nil {
			v.Make = *in.Make
		}
		if in.Model != nil {
			v.Model = *in.Model
		}
		if in.ProductionYear != nil {
			v.ProductionYear = *in.ProductionYear
		}
		if in.PriceCents != nil {
			v.PriceCents = *in.PriceCents
		}
		if in.Condition != nil {
			v.Condition = *in.Condition
		}
		if in.Availability != nil {
			v.Availability = *in.Availability
		}
		if in.Active != nil {
			v.Active = *in.Active
		}

		if err := r.Vehicles().Update(ctx, v); err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				return conflict("vehicle %s was modified concurrently", v.VIN)
			}
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *vehicleService) DeactivateVehicle(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

func (s *vehicleService) ActivateVehicle(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

func (s *vehicleService) setActive(ctx context.Context, id int64, active bool) error {
	err := s.store.Vehicles().SetActive(ctx, id, active)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("vehicle", id)
	}
	return err
}
