package api

import (
	"context"
	"net/http"

	"showroom-backend/internal/domain"
)

type createRequestRequest struct {
	VehicleID int64  `json:"vehicle_id"`
	Notes     string `json:"notes"`
}

func (s *Server) handleCreatePurchaseRequest(w http.ResponseWriter, r *http.Request) {
	s.createRequest(w, r, s.requests.CreatePurchaseRequest)
}

func (s *Server) handleCreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	s.createRequest(w, r, s.requests.CreateServiceRequest)
}

func (s *Server) handleCreateInspectionRequest(w http.ResponseWriter, r *http.Request) {
	s.createRequest(w, r, s.requests.CreateInspectionRequest)
}

func (s *Server) createRequest(
	w http.ResponseWriter,
	r *http.Request,
	create func(ctx context.Context, customerUsername string, vehicleID int64, notes string) (*domain.Request, error),
) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createRequestRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.VehicleID <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle_id is required")
		return
	}

	created, err := create(r.Context(), claims.Username, req.VehicleID, req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAcceptRequest(w http.ResponseWriter, r *http.Request) {
	s.decideRequest(w, r, s.requests.AcceptRequest)
}

func (s *Server) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	s.decideRequest(w, r, s.requests.RejectRequest)
}

func (s *Server) decideRequest(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, requestID int64, employeeUsername string) (*domain.Request, error),
) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	decided, err := decide(r.Context(), id, claims.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decided)
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.requests.GetAllRequests(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) handleListMyRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	requests, err := s.requests.GetRequestsByCustomerUsername(r.Context(), claims.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) handleListRequestsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid customer id")
		return
	}

	requests, err := s.requests.GetRequestsByCustomerID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// handleGetRequest lets staff read any request and customers read only
// their own.
func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request id")
		return
	}

	if !claims.HasRole(domain.RoleEmployee, domain.RoleManager) {
		owns, err := s.guard.IsOwnerOfRequest(r.Context(), claims.Username, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if !owns {
			writeError(w, r, http.StatusForbidden, "insufficient privileges")
			return
		}
	}

	request, err := s.requests.GetRequestByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
