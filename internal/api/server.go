package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/security"
	"showroom-backend/internal/service"
)

// Server holds the HTTP surface of the application and its dependencies.
type Server struct {
	auth      service.AuthService
	vehicles  service.VehicleService
	customers service.CustomerService
	employees service.EmployeeService
	requests  service.RequestService
	guard     *security.RequestGuard
	tokens    security.TokenManager
}

func NewServer(
	auth service.AuthService,
	vehicles service.VehicleService,
	customers service.CustomerService,
	employees service.EmployeeService,
	requests service.RequestService,
	guard *security.RequestGuard,
	tokens security.TokenManager,
) *Server {
	return &Server{
		auth:      auth,
		vehicles:  vehicles,
		customers: customers,
		employees: employees,
		requests:  requests,
		guard:     guard,
		tokens:    tokens,
	}
}

// Router builds the full route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Public routes.
	public := r.PathPrefix("/api").Subrouter()
	public.HandleFunc("/auth/register", s.handleRegisterCustomer).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	public.HandleFunc("/vehicles", s.handleListVehicles).Methods(http.MethodGet)
	public.HandleFunc("/vehicles/{id:[0-9]+}", s.handleGetVehicle).Methods(http.MethodGet)

	// Authenticated routes.
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(s.authenticate)

	staffOnly := requireRoles(domain.RoleEmployee, domain.RoleManager)
	managerOnly := requireRoles(domain.RoleManager)
	customerOnly := requireRoles(domain.RoleCustomer)

	authed.HandleFunc("/auth/register/employee", managerOnly(s.handleRegisterEmployee)).Methods(http.MethodPost)

	authed.HandleFunc("/vehicles", staffOnly(s.handleCreateVehicle)).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", staffOnly(s.handleUpdateVehicle)).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", managerOnly(s.handleDeactivateVehicle)).Methods(http.MethodDelete)
	authed.HandleFunc("/vehicles/{id:[0-9]+}/activate", managerOnly(s.handleActivateVehicle)).Methods(http.MethodPost)

	authed.HandleFunc("/customers", staffOnly(s.handleListCustomers)).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id:[0-9]+}", s.handleGetCustomer).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id:[0-9]+}", s.handleUpdateCustomer).Methods(http.MethodPut)
	authed.HandleFunc("/customers/{id:[0-9]+}", managerOnly(s.handleDeactivateCustomer)).Methods(http.MethodDelete)

	authed.HandleFunc("/employees", managerOnly(s.handleListEmployees)).Methods(http.MethodGet)
	authed.HandleFunc("/employees/{id:[0-9]+}", staffOnly(s.handleGetEmployee)).Methods(http.MethodGet)
	authed.HandleFunc("/employees/{id:[0-9]+}", managerOnly(s.handleUpdateEmployee)).Methods(http.MethodPut)
	authed.HandleFunc("/employees/{id:[0-9]+}", managerOnly(s.handleDeactivateEmployee)).Methods(http.MethodDelete)

	authed.HandleFunc("/requests/purchase", customerOnly(s.handleCreatePurchaseRequest)).Methods(http.MethodPost)
	authed.HandleFunc("/requests/service", customerOnly(s.handleCreateServiceRequest)).Methods(http.MethodPost)
	authed.HandleFunc("/requests/inspection", customerOnly(s.handleCreateInspectionRequest)).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id:[0-9]+}/accept", staffOnly(s.handleAcceptRequest)).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id:[0-9]+}/reject", staffOnly(s.handleRejectRequest)).Methods(http.MethodPost)
	authed.HandleFunc("/requests", staffOnly(s.handleListRequests)).Methods(http.MethodGet)
	authed.HandleFunc("/requests/my", customerOnly(s.handleListMyRequests)).Methods(http.MethodGet)
	authed.HandleFunc("/requests/customer/{id:[0-9]+}", staffOnly(s.handleListRequestsByCustomer)).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id:[0-9]+}", s.handleGetRequest).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
