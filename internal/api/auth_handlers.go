package api

import (
	"net/http"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/service"
)

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (req *registerRequest) toInput() service.RegisterCustomerInput {
	return service.RegisterCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address: domain.Address{
			Street:     req.Street,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		},
		Username: req.Username,
		Password: req.Password,
	}
}

func (req *registerRequest) validate() string {
	switch {
	case req.Username == "":
		return "username is required"
	case len(req.Password) < 8:
		return "password must be at least 8 characters"
	case req.Email == "":
		return "email is required"
	case req.FirstName == "" || req.LastName == "":
		return "first and last name are required"
	default:
		return ""
	}
}

type registerEmployeeRequest struct {
	registerRequest
	Position domain.EmployeePosition `json:"position"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string   `json:"token"`
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (s *Server) handleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	customer, err := s.auth.RegisterCustomer(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (s *Server) handleRegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req registerEmployeeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	if req.Position != domain.PositionManager && req.Position != domain.PositionEmployee {
		writeError(w, r, http.StatusBadRequest, "position must be MANAGER or EMPLOYEE")
		return
	}

	employee, err := s.auth.RegisterEmployee(r.Context(), service.RegisterEmployeeInput{
		RegisterCustomerInput: req.toInput(),
		Position:              req.Position,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
		Email:    result.Email,
		Roles:    result.Roles,
	})
}
