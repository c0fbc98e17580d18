package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dztransit/logistics-api/internal/model"
)

type fleetFixture struct {
	svc      *FleetService
	vehicles *fakeVehicleRepo
	drivers  *fakeDriverRepo
	tours    *fakeTourRepo

	driver model.Driver
}

func newFleetFixture(t *testing.T) *fleetFixture {
	t.Helper()
	ctx := context.Background()

	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	tours := newFakeTourRepo()
	shipments := newFakeShipmentRepo()

	driver := model.Driver{Name: "Karim Benali", LicenseNumber: "16-1234567"}
	require.NoError(t, drivers.Create(ctx, &driver))

	return &fleetFixture{
		svc:      NewFleetService(vehicles, drivers, tours, shipments, zerolog.Nop()),
		vehicles: vehicles,
		drivers:  drivers,
		tours:    tours,
		driver:   driver,
	}
}

func (f *fleetFixture) addVehicle(t *testing.T, status model.VehicleStatus) model.Vehicle {
	t.Helper()
	vehicle := model.Vehicle{
		LicensePlate: "00216-116-" + uuid.NewString()[:4],
		VehicleType:  "fourgon",
		Capacity:     decimal.NewFromInt(1500),
		Status:       status,
	}
	require.NoError(t, f.vehicles.Create(context.Background(), &vehicle))
	return vehicle
}

func TestFleetCreateTourMarksVehicleInUse(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	vehicle := f.addVehicle(t, model.VehicleAvailable)

	_, err := f.svc.CreateTour(ctx, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: vehicle.ID,
		Date:      time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := f.svc.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleInUse, got.Status)
}

func TestFleetTourOnFutureDateKeepsVehicleAvailable(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	vehicle := f.addVehicle(t, model.VehicleAvailable)

	_, err := f.svc.CreateTour(ctx, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: vehicle.ID,
		Date:      time.Now().UTC().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	got, err := f.svc.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleAvailable, got.Status)
}

func TestFleetMaintenanceIsSticky(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	vehicle := f.addVehicle(t, model.VehicleMaintenance)

	_, err := f.svc.CreateTour(ctx, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: vehicle.ID,
		Date:      time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := f.svc.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleMaintenance, got.Status, "maintenance must survive schedule refreshes")
}

func TestFleetDeleteTourReleasesVehicle(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	vehicle := f.addVehicle(t, model.VehicleAvailable)

	tour, err := f.svc.CreateTour(ctx, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: vehicle.ID,
		Date:      time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTour(ctx, tour.ID))

	got, err := f.svc.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleAvailable, got.Status)
}

func TestFleetUpdateTourReleasesPreviousVehicle(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()
	first := f.addVehicle(t, model.VehicleAvailable)
	second := f.addVehicle(t, model.VehicleAvailable)

	tour, err := f.svc.CreateTour(ctx, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: first.ID,
		Date:      time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateTour(ctx, tour.ID, TourInput{
		DriverID:  f.driver.ID,
		VehicleID: second.ID,
		Date:      time.Now().UTC(),
	})
	require.NoError(t, err)

	released, err := f.svc.GetVehicle(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleAvailable, released.Status)

	assigned, err := f.svc.GetVehicle(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleInUse, assigned.Status)
}

func TestFleetUpdateVehicleRejectsInUse(t *testing.T) {
	f := newFleetFixture(t)
	vehicle := f.addVehicle(t, model.VehicleAvailable)

	inUse := model.VehicleInUse
	_, err := f.svc.UpdateVehicle(context.Background(), vehicle.ID, UpdateVehicleInput{Status: &inUse})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFleetRefreshVehicleStatuses(t *testing.T) {
	f := newFleetFixture(t)
	ctx := context.Background()

	// Marked busy but without a tour today: the refresh releases it.
	stale := f.addVehicle(t, model.VehicleInUse)
	// In maintenance with a tour today: stays in maintenance.
	garage := f.addVehicle(t, model.VehicleMaintenance)
	// Available with a tour today: becomes busy.
	scheduled := f.addVehicle(t, model.VehicleAvailable)

	for _, vehicleID := range []uuid.UUID{garage.ID, scheduled.ID} {
		require.NoError(t, f.tours.Create(ctx, &model.Tour{
			DriverID:  f.driver.ID,
			VehicleID: vehicleID,
			Date:      time.Now().UTC(),
		}, nil))
	}

	updated, err := f.svc.RefreshVehicleStatuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	got, _ := f.svc.GetVehicle(ctx, stale.ID)
	assert.Equal(t, model.VehicleAvailable, got.Status)
	got, _ = f.svc.GetVehicle(ctx, garage.ID)
	assert.Equal(t, model.VehicleMaintenance, got.Status)
	got, _ = f.svc.GetVehicle(ctx, scheduled.ID)
	assert.Equal(t, model.VehicleInUse, got.Status)
}

func TestFleetCreateTourUnknownDriver(t *testing.T) {
	f := newFleetFixture(t)
	vehicle := f.addVehicle(t, model.VehicleAvailable)

	_, err := f.svc.CreateTour(context.Background(), TourInput{
		DriverID:  uuid.New(),
		VehicleID: vehicle.ID,
		Date:      time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
