package api

import (
	"net/http"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/service"
)

type updateProfileRequest struct {
	FirstName   *string                  `json:"first_name,omitempty"`
	LastName    *string                  `json:"last_name,omitempty"`
	Email       *string                  `json:"email,omitempty"`
	PhoneNumber *string                  `json:"phone_number,omitempty"`
	Street      *string                  `json:"street,omitempty"`
	City        *string                  `json:"city,omitempty"`
	PostalCode  *string                  `json:"postal_code,omitempty"`
	Country     *string                  `json:"country,omitempty"`
	Position    *domain.EmployeePosition `json:"position,omitempty"`
}

func (req *updateProfileRequest) toInput() service.UpdateProfileInput {
	in := service.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
	}
	if req.Street != nil || req.City != nil || req.PostalCode != nil || req.Country != nil {
		addr := domain.Address{}
		if req.Street != nil {
			addr.Street = *req.Street
		}
		if req.City != nil {
			addr.City = *req.City
		}
		if req.PostalCode != nil {
			addr.PostalCode = *req.PostalCode
		}
		if req.Country != nil {
			addr.Country = *req.Country
		}
		in.Address = &addr
	}
	return in
}

// isSelfOrStaff allows staff through unconditionally and customers only
// when the target id matches their own account.
func isSelfOrStaff(r *http.Request, targetID int64) bool {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		return false
	}
	if claims.HasRole(domain.RoleEmployee, domain.RoleManager) {
		return true
	}
	return claims.UserID == targetID
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.customers.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}
	if !isSelfOrStaff(r, id) {
		writeError(w, r, http.StatusForbidden, "insufficient privileges")
		return
	}

	customer, err := s.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}
	if !isSelfOrStaff(r, id) {
		writeError(w, r, http.StatusForbidden, "insufficient privileges")
		return
	}

	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	customer, err := s.customers.UpdateCustomer(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) handleDeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := s.customers.DeactivateCustomer(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.employees.ListEmployees(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid employee id")
		return
	}

	employee, err := s.employees.GetEmployee(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid employee id")
		return
	}

	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	employee, err := s.employees.UpdateEmployee(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) handleDeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid employee id")
		return
	}
	if err := s.employees.DeactivateEmployee(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
