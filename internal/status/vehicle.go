package status

import "github.com/dztransit/logistics-api/internal/model"

// DeriveVehicleStatus returns the vehicle status implied by today's
// tour schedule. Maintenance is sticky: scheduling does not override
// it. Idempotent; fired only when explicitly invoked.
func DeriveVehicleStatus(current model.VehicleStatus, hasTourToday bool) model.VehicleStatus {
	if current == model.VehicleMaintenance {
		return model.VehicleMaintenance
	}
	if hasTourToday {
		return model.VehicleInUse
	}
	if current == model.VehicleInUse {
		return model.VehicleAvailable
	}
	return current
}
