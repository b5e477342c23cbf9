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

const customerColumns = `id, first_name, last_name, email, COALESCE(phone_number, ''), COALESCE(street, ''), COALESCE(city, ''), COALESCE(postal_code, ''), COALESCE(country, ''), username, password_hash, roles, active, created_at, updated_at`

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone_number, street, city, postal_code, country, username, password_hash, roles, active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.PhoneNumber,
		c.Address.Street, c.Address.City, c.Address.PostalCode, c.Address.Country,
		c.Username, c.PasswordHash, pq.Array(c.Roles), c.Active, time.Now()).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapPqError(err)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (r *customerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	return r.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE username = $1`, username)
}

func (r *customerRepository) get(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
		&c.Address.Street, &c.Address.City, &c.Address.PostalCode, &c.Address.Country,
		&c.Username, &c.PasswordHash, pq.Array(&c.Roles), &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM customers WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	return exists, err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
			&c.Address.Street, &c.Address.City, &c.Address.PostalCode, &c.Address.Country,
			&c.Username, &c.PasswordHash, pq.Array(&c.Roles), &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers
	          SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
	              street = $5, city = $6, postal_code = $7, country = $8, updated_at = $9
	          WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.PhoneNumber,
		c.Address.Street, c.Address.City, c.Address.PostalCode, c.Address.Country, time.Now(), c.ID)
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

func (r *customerRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE customers SET active = $1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
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
