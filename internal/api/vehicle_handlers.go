package api

import (
	"net/http"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/service"
)

type createVehicleRequest struct {
	VIN            string                  `json:"vin"`
	Make           string                  `json:"make"`
	Model          string                  `json:"model"`
	ProductionYear int                     `json:"production_year"`
	PriceCents     int64                   `json:"price_cents"`
	Condition      domain.VehicleCondition `json:"condition"`
}

type updateVehicleRequest struct {
	Make           *string                     `json:"make,omitempty"`
	Model          *string                     `json:"model,omitempty"`
	ProductionYear *int                        `json:"production_year,omitempty"`
	PriceCents     *int64                      `json:"price_cents,omitempty"`
	Condition      *domain.VehicleCondition    `json:"condition,omitempty"`
	Availability   *domain.VehicleAvailability `json:"availability,omitempty"`
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Condition != domain.VehicleConditionNew && req.Condition != domain.VehicleConditionUsed {
		writeError(w, r, http.StatusBadRequest, "condition must be NEW or USED")
		return
	}
	if req.PriceCents <= 0 {
		writeError(w, r, http.StatusBadRequest, "price_cents must be positive")
		return
	}

	vehicle, err := s.vehicles.CreateVehicle(r.Context(), service.CreateVehicleInput{
		VIN:            req.VIN,
		Make:           req.Make,
		Model:          req.Model,
		ProductionYear: req.ProductionYear,
		PriceCents:     req.PriceCents,
		Condition:      req.Condition,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// handleListVehicles lists available vehicles by default; staff can pass
// ?all=true to see the whole active inventory.
func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	var (
		vehicles []domain.Vehicle
		err      error
	)
	if r.URL.Query().Get("all") == "true" {
		vehicles, err = s.vehicles.ListActiveVehicles(r.Context())
	} else {
		vehicles, err = s.vehicles.ListAvailableVehicles(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	vehicle, err := s.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	var req updateVehicleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Re-listing (changing availability by hand) is a manager operation.
	if req.Availability != nil {
		claims, ok := claimsFromContext(r.Context())
		if !ok || !claims.HasRole(domain.RoleManager) {
			writeError(w, r, http.StatusForbidden, "changing availability requires manager privileges")
			return
		}
	}

	vehicle, err := s.vehicles.UpdateVehicle(r.Context(), id, service.UpdateVehicleInput{
		Make:           req.Make,
		Model:          req.Model,
		ProductionYear: req.ProductionYear,
		PriceCents:     req.PriceCents,
		Condition:      req.Condition,
		Availability:   req.Availability,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleDeactivateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := s.vehicles.DeactivateVehicle(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleActivateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := s.vehicles.ActivateVehicle(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
