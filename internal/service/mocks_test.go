package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/repository"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	args := m.Called(ctx, vin)
	return args.Bool(0), args.Error(1)
}
func (m *MockVehicleRepo) ListActive(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) ListActiveByAvailability(ctx context.Context, availability domain.VehicleAvailability) ([]domain.Vehicle, error) {
	args := m.Called(ctx, availability)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) Update(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) List(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Request, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Request, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Request, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Request), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *MockCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) ListByPosition(ctx context.Context, position domain.EmployeePosition) ([]domain.Employee, error) {
	args := m.Called(ctx, position)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepo) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestReceived(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string) error {
	args := m.Called(ctx, customerEmail, customerName, requestType, vin)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestDecision(ctx context.Context, customerEmail, customerName string, requestType domain.RequestType, vin string, accepted bool) error {
	args := m.Called(ctx, customerEmail, customerName, requestType, vin, accepted)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestsReminder(ctx context.Context, managerEmail string, pendingCount int) error {
	args := m.Called(ctx, managerEmail, pendingCount)
	return args.Error(0)
}

// testStore bundles mock repositories behind the Store interface. Execute
// runs the unit of work directly against the same mocks.
type testStore struct {
	vehicles  *MockVehicleRepo
	requests  *MockRequestRepo
	customers *MockCustomerRepo
	employees *MockEmployeeRepo
}

func newTestStore() *testStore {
	return &testStore{
		vehicles:  new(MockVehicleRepo),
		requests:  new(MockRequestRepo),
		customers: new(MockCustomerRepo),
		employees: new(MockEmployeeRepo),
	}
}

func (s *testStore) Vehicles() repository.VehicleRepository   { return s.vehicles }
func (s *testStore) Requests() repository.RequestRepository   { return s.requests }
func (s *testStore) Customers() repository.CustomerRepository { return s.customers }
func (s *testStore) Employees() repository.EmployeeRepository { return s.employees }

func (s *testStore) Execute(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(s)
}
