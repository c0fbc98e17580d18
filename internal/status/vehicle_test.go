package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dztransit/logistics-api/internal/model"
)

func TestDeriveVehicleStatus(t *testing.T) {
	cases := []struct {
		name         string
		current      model.VehicleStatus
		hasTourToday bool
		want         model.VehicleStatus
	}{
		{"maintenance sticky with tour", model.VehicleMaintenance, true, model.VehicleMaintenance},
		{"maintenance sticky without tour", model.VehicleMaintenance, false, model.VehicleMaintenance},
		{"available gets in use", model.VehicleAvailable, true, model.VehicleInUse},
		{"in use stays in use", model.VehicleInUse, true, model.VehicleInUse},
		{"in use reverts", model.VehicleInUse, false, model.VehicleAvailable},
		{"available stays available", model.VehicleAvailable, false, model.VehicleAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveVehicleStatus(tc.current, tc.hasTourToday)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveVehicleStatus_Idempotent(t *testing.T) {
	once := DeriveVehicleStatus(model.VehicleAvailable, true)
	twice := DeriveVehicleStatus(once, true)
	assert.Equal(t, once, twice)
}

func TestShouldRecordTransition(t *testing.T) {
	assert.True(t, ShouldRecordTransition(model.ShipmentPending, model.ShipmentInTransit))
	assert.False(t, ShouldRecordTransition(model.ShipmentInTransit, model.ShipmentInTransit))
}
