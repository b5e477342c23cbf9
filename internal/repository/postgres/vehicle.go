package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"

	"github.com/lib/pq"
)

const vehicleColumns = `id, vin, make, model, production_year, price_cents, condition, availability, owner_id, version, active, created_at, updated_at`

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (vin, make, model, production_year, price_cents, condition, availability, owner_id, version, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $10) RETURNING id, version, created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, v.VIN, v.Make, v.Model, v.ProductionYear, v.PriceCents, v.Condition, v.Availability, v.OwnerID, v.Active, now).
		Scan(&v.ID, &v.Version, &v.CreatedAt, &v.UpdatedAt)
	return mapPqError(err)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.VIN, &v.Make, &v.Model, &v.ProductionYear, &v.PriceCents,
		&v.Condition, &v.Availability, &v.OwnerID, &v.Version, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vin = $1`
	err := r.db.QueryRowContext(ctx, query, vin).Scan(
		&v.ID, &v.VIN, &v.Make, &v.Model, &v.ProductionYear, &v.PriceCents,
		&v.Condition, &v.Availability, &v.OwnerID, &v.Version, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM vehicles WHERE vin = $1)`, vin).Scan(&exists)
	return exists, err
}

func (r *vehicleRepository) ListActive(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE active = true ORDER BY id`
	return r.list(ctx, query)
}

func (r *vehicleRepository) ListActiveByAvailability(ctx context.Context, availability domain.VehicleAvailability) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE active = true AND availability = $1 ORDER BY id`
	return r.list(ctx, query, availability)
}

func (r *vehicleRepository) list(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.VIN, &v.Make, &v.Model, &v.ProductionYear, &v.PriceCents,
			&v.Condition, &v.Availability, &v.OwnerID, &v.Version, &v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// Update writes all mutable vehicle fields conditioned on the version the
// caller loaded. Zero rows affected means another writer got there first.
func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles
	          SET make = $1, model = $2, production_year = $3, price_cents = $4, condition = $5,
	              availability = $6, owner_id = $7, active = $8, version = version + 1, updated_at = $9
	          WHERE id = $10 AND version = $11`
	result, err := r.db.ExecContext(ctx, query, v.Make, v.Model, v.ProductionYear, v.PriceCents, v.Condition,
		v.Availability, v.OwnerID, v.Active, time.Now(), v.ID, v.Version)
	if err != nil {
		return mapPqError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrVersionConflict
	}
	v.Version++
	return nil
}

func (r *vehicleRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE vehicles SET active = $1, version = version + 1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// mapPqError translates unique-constraint violations into ErrDuplicate.
func mapPqError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
