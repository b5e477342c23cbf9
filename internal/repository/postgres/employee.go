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

const employeeColumns = `id, first_name, last_name, email, COALESCE(phone_number, ''), COALESCE(street, ''), COALESCE(city, ''), COALESCE(postal_code, ''), COALESCE(country, ''), username, password_hash, roles, position, active, created_at, updated_at`

type employeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (first_name, last_name, email, phone_number, street, city, postal_code, country, username, password_hash, roles, position, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
		e.Address.Street, e.Address.City, e.Address.PostalCode, e.Address.Country,
		e.Username, e.PasswordHash, pq.Array(e.Roles), e.Position, e.Active, time.Now()).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return mapPqError(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.get(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.get(ctx, `SELECT `+employeeColumns+` FROM employees WHERE username = $1`, username)
}

func (r *employeeRepository) get(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.Address.Street, &e.Address.City, &e.Address.PostalCode, &e.Address.Country,
		&e.Username, &e.PasswordHash, pq.Array(&e.Roles), &e.Position, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
}

func (r *employeeRepository) ListByPosition(ctx context.Context, position domain.EmployeePosition) ([]domain.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE position = $1 ORDER BY id`, position)
}

func (r *employeeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
			&e.Address.Street, &e.Address.City, &e.Address.PostalCode, &e.Address.Country,
			&e.Username, &e.PasswordHash, pq.Array(&e.Roles), &e.Position, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees
	          SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
	              street = $5, city = $6, postal_code = $7, country = $8, position = $9, updated_at = $10
	          WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query, e.FirstName, e.LastName, e.Email, e.PhoneNumber,
		e.Address.Street, e.Address.City, e.Address.PostalCode, e.Address.Country, e.Position, time.Now(), e.ID)
	if err != nil {
		return mapPqError(err)
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

func (r *employeeRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE employees SET active = $1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
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
