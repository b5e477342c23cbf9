package jobs

import (
	"context"
	"time"

	"showroom-backend/internal/domain"
	"showroom-backend/internal/logger"
)

const jobTimeout = 5 * time.Minute

// SendPendingRequestReminders mails every manager a count of requests
// still awaiting a decision.
func (jr *JobRunner) SendPendingRequestReminders() {
	jr.runWithRecovery("SendPendingRequestReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		pending, err := jr.store.Requests().ListByStatus(ctx, domain.RequestStatusPending)
		if err != nil {
			logger.Error("Failed to list pending requests", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending requests, skipping reminders")
			return
		}

		managers, err := jr.store.Employees().ListByPosition(ctx, domain.PositionManager)
		if err != nil {
			logger.Error("Failed to list managers", "error", err)
			return
		}

		sent := 0
		for _, m := range managers {
			if !m.Active {
				continue
			}
			if err := jr.email.SendPendingRequestsReminder(ctx, m.Email, len(pending)); err != nil {
				logger.Warn("Failed to send pending requests reminder",
					"manager", m.Username, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Pending request reminders sent",
			"pending_count", len(pending), "managers_notified", sent)
	})
}

// AuditVehicleOwnership flags inventory records whose ownership does not
// match their availability: SOLD vehicles must have an owner, and
// AVAILABLE or RESERVED vehicles must not.
func (jr *JobRunner) AuditVehicleOwnership() {
	jr.runWithRecovery("AuditVehicleOwnership", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		vehicles, err := jr.store.Vehicles().ListActive(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles", "error", err)
			return
		}

		violations := 0
		for _, v := range vehicles {
			switch v.Availability {
			case domain.VehicleSold:
				if v.OwnerID == nil {
					violations++
					logger.Error("Sold vehicle has no owner",
						"vehicle_id", v.ID, "vin", v.VIN)
				}
			case domain.VehicleAvailable, domain.VehicleReserved:
				if v.OwnerID != nil {
					violations++
					logger.Error("Unsold vehicle has an owner",
						"vehicle_id", v.ID, "vin", v.VIN,
						"availability", v.Availability, "owner_id", *v.OwnerID)
				}
			}
		}
		logger.Info("Vehicle ownership audit finished",
			"vehicles_checked", len(vehicles), "violations", violations)
	})
}
