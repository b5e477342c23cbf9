package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
	"showroom-backend/internal/repository/postgres"
)

func requestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "employee_id", "request_type",
		"status", "customer_notes", "created_at", "updated_at", "username", "vin", "e_username"})
}

func TestRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.Request{
			CustomerID:    1,
			VehicleID:     2,
			Type:          domain.RequestTypePurchase,
			Status:        domain.RequestStatusPending,
			CustomerNotes: "please call me",
		}

		mock.ExpectQuery("INSERT INTO requests").
			WithArgs(req.CustomerID, req.VehicleID, req.AssignedEmployeeID, req.Type,
				req.Status, req.CustomerNotes, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), req.ID)
	})
}

func TestRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Joined Read Fills Display Fields", func(t *testing.T) {
		rows := requestRows().
			AddRow(7, 1, 2, nil, "PURCHASE", "PENDING", "please call me",
				time.Now(), nil, "alice", "1HGBH41JXMN109186", "")

		mock.ExpectQuery("SELECT (.+) FROM requests r").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		req, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "alice", req.CustomerUsername)
		assert.Equal(t, "1HGBH41JXMN109186", req.VehicleVIN)
		assert.Empty(t, req.AssignedEmployeeUsername)
		assert.Nil(t, req.AssignedEmployeeID)
		assert.Nil(t, req.UpdatedAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM requests r").
			WithArgs(int64(99)).
			WillReturnRows(requestRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRequestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	t.Run("Success Stamps UpdatedAt", func(t *testing.T) {
		employeeID := int64(5)
		req := &domain.Request{
			ID:                 7,
			Status:             domain.RequestStatusAccepted,
			AssignedEmployeeID: &employeeID,
		}

		mock.ExpectExec("UPDATE requests").
			WithArgs(req.AssignedEmployeeID, req.Status, sqlmock.AnyArg(), req.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, req)
		assert.NoError(t, err)
		assert.NotNil(t, req.UpdatedAt)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		req := &domain.Request{ID: 99, Status: domain.RequestStatusRejected}

		mock.ExpectExec("UPDATE requests").
			WithArgs(req.AssignedEmployeeID, req.Status, sqlmock.AnyArg(), req.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, req)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRequestRepository_ListByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewRequestRepository(db)
	ctx := context.Background()

	rows := requestRows().
		AddRow(7, 1, 2, nil, "PURCHASE", "PENDING", "", time.Now(), nil, "alice", "1HGBH41JXMN109186", "").
		AddRow(8, 2, 3, nil, "SERVICE", "PENDING", "", time.Now(), nil, "carol", "2HGBH41JXMN109187", "")

	mock.ExpectQuery("SELECT (.+) FROM requests r").
		WithArgs(domain.RequestStatusPending).
		WillReturnRows(rows)

	requests, err := repo.ListByStatus(ctx, domain.RequestStatusPending)
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, "carol", requests[1].CustomerUsername)
}
