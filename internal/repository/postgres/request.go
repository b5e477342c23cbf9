package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
)

// Request reads join customers, vehicles and employees so snapshots carry
// the usernames and VIN the API exposes.
const requestSelect = `SELECT r.id, r.customer_id, r.vehicle_id, r.employee_id, r.request_type, r.status,
	COALESCE(r.customer_notes, ''), r.created_at, r.updated_at,
	c.username, v.vin, COALESCE(e.username, '')
	FROM requests r
	JOIN customers c ON c.id = r.customer_id
	JOIN vehicles v ON v.id = r.vehicle_id
	LEFT JOIN employees e ON e.id = r.employee_id`

type requestRepository struct {
	db DBTX
}

func NewRequestRepository(db DBTX) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (customer_id, vehicle_id, employee_id, request_type, status, customer_notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, req.CustomerID, req.VehicleID, req.AssignedEmployeeID,
		req.Type, req.Status, req.CustomerNotes, time.Now()).Scan(&req.ID, &req.CreatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	req := &domain.Request{}
	err := r.scanOne(r.db.QueryRowContext(ctx, requestSelect+` WHERE r.id = $1`, id), req)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests SET employee_id = $1, status = $2, updated_at = $3 WHERE id = $4`
	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, req.AssignedEmployeeID, req.Status, now, req.ID)
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
	req.UpdatedAt = &now
	return nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	return r.list(ctx, requestSelect+` ORDER BY r.created_at DESC`)
}

func (r *requestRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error) {
	return r.list(ctx, requestSelect+` WHERE r.customer_id = $1 ORDER BY r.created_at DESC`, customerID)
}

func (r *requestRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Request, error) {
	return r.list(ctx, requestSelect+` WHERE r.employee_id = $1 ORDER BY r.created_at DESC`, employeeID)
}

func (r *requestRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Request, error) {
	return r.list(ctx, requestSelect+` WHERE r.vehicle_id = $1 ORDER BY r.created_at DESC`, vehicleID)
}

func (r *requestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Request, error) {
	return r.list(ctx, requestSelect+` WHERE r.status = $1 ORDER BY r.created_at DESC`, status)
}

func (r *requestRepository) list(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := r.scanRow(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *requestRepository) scanOne(row *sql.Row, req *domain.Request) error {
	return r.scanRow(row, req)
}

func (r *requestRepository) scanRow(s scanner, req *domain.Request) error {
	var updatedAt sql.NullTime
	err := s.Scan(&req.ID, &req.CustomerID, &req.VehicleID, &req.AssignedEmployeeID,
		&req.Type, &req.Status, &req.CustomerNotes, &req.CreatedAt, &updatedAt,
		&req.CustomerUsername, &req.VehicleVIN, &req.AssignedEmployeeUsername)
	if err != nil {
		return err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		req.UpdatedAt = &t
	}
	return nil
}
