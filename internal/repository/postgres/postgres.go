package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"showroom-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code can run against the pool or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repos struct {
	vehicles  repository.VehicleRepository
	requests  repository.RequestRepository
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
}

func newRepos(db DBTX) repos {
	return repos{
		vehicles:  NewVehicleRepository(db),
		requests:  NewRequestRepository(db),
		customers: NewCustomerRepository(db),
		employees: NewEmployeeRepository(db),
	}
}

func (r repos) Vehicles() repository.VehicleRepository   { return r.vehicles }
func (r repos) Requests() repository.RequestRepository   { return r.requests }
func (r repos) Customers() repository.CustomerRepository { return r.customers }
func (r repos) Employees() repository.EmployeeRepository { return r.employees }

// Store implements repository.Store on PostgreSQL. Reads go against the
// connection pool; Execute scopes writes to a single transaction.
type Store struct {
	db *sql.DB
	repos
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repos: newRepos(db)}
}

func (s *Store) Execute(ctx context.Context, fn func(r repository.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(newRepos(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
