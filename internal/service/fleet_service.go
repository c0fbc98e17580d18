package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
	"github.com/dztransit/logistics-api/internal/status"
)

// FleetService manages vehicles and tours. Vehicle status is never set
// directly to IN_USE by callers; it is derived from the tour schedule
// after every tour write and by the batch refresh.
type FleetService struct {
	vehicles  repository.VehicleRepository
	drivers   repository.DriverRepository
	tours     repository.TourRepository
	shipments repository.ShipmentRepository
	log       zerolog.Logger
}

func NewFleetService(
	vehicles repository.VehicleRepository,
	drivers repository.DriverRepository,
	tours repository.TourRepository,
	shipments repository.ShipmentRepository,
	log zerolog.Logger,
) *FleetService {
	return &FleetService{
		vehicles:  vehicles,
		drivers:   drivers,
		tours:     tours,
		shipments: shipments,
		log:       log,
	}
}

type CreateVehicleInput struct {
	LicensePlate string
	VehicleType  string
	Capacity     decimal.Decimal
}

type UpdateVehicleInput struct {
	LicensePlate *string
	VehicleType  *string
	Capacity     *decimal.Decimal
	Status       *model.VehicleStatus
}

func (s *FleetService) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	if input.LicensePlate == "" {
		return nil, fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}
	if !input.Capacity.IsPositive() {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	vehicle := &model.Vehicle{
		LicensePlate: input.LicensePlate,
		VehicleType:  input.VehicleType,
		Capacity:     input.Capacity,
		Status:       model.VehicleAvailable,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *FleetService) UpdateVehicle(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if input.LicensePlate != nil {
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.VehicleType != nil {
		vehicle.VehicleType = *input.VehicleType
	}
	if input.Capacity != nil {
		if !input.Capacity.IsPositive() {
			return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		vehicle.Capacity = *input.Capacity
	}
	if input.Status != nil {
		// Operators move vehicles into and out of maintenance; IN_USE
		// is derived, not assignable.
		switch *input.Status {
		case model.VehicleMaintenance, model.VehicleAvailable:
			vehicle.Status = *input.Status
		default:
			return nil, fmt.Errorf("%w: vehicle status can only be set to MAINTENANCE or AVAILABLE", ErrInvalidInput)
		}
	}

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return s.refreshVehicle(ctx, vehicle.ID)
}

func (s *FleetService) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return vehicle, nil
}

func (s *FleetService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *FleetService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehicles.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.vehicles.Delete(ctx, id)
}

type TourInput struct {
	DriverID    uuid.UUID
	VehicleID   uuid.UUID
	Date        time.Time
	ShipmentIDs []uuid.UUID
}

func (s *FleetService) CreateTour(ctx context.Context, input TourInput) (*model.Tour, error) {
	if err := s.validateTourInput(ctx, input); err != nil {
		return nil, err
	}

	tour := &model.Tour{
		DriverID:  input.DriverID,
		VehicleID: input.VehicleID,
		Date:      dateOnly(input.Date),
	}
	if err := s.tours.Create(ctx, tour, input.ShipmentIDs); err != nil {
		return nil, err
	}

	if _, err := s.refreshVehicle(ctx, tour.VehicleID); err != nil {
		return nil, err
	}
	return s.tours.GetByID(ctx, tour.ID)
}

func (s *FleetService) UpdateTour(ctx context.Context, id uuid.UUID, input TourInput) (*model.Tour, error) {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.validateTourInput(ctx, input); err != nil {
		return nil, err
	}

	previousVehicleID := tour.VehicleID
	tour.DriverID = input.DriverID
	tour.VehicleID = input.VehicleID
	tour.Date = dateOnly(input.Date)
	tour.Driver = nil
	tour.Vehicle = nil
	tour.Shipments = nil

	if err := s.tours.Update(ctx, tour, input.ShipmentIDs); err != nil {
		return nil, err
	}

	if _, err := s.refreshVehicle(ctx, tour.VehicleID); err != nil {
		return nil, err
	}
	if previousVehicleID != tour.VehicleID {
		if _, err := s.refreshVehicle(ctx, previousVehicleID); err != nil {
			return nil, err
		}
	}
	return s.tours.GetByID(ctx, tour.ID)
}

func (s *FleetService) GetTour(ctx context.Context, id uuid.UUID) (*model.Tour, error) {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return tour, nil
}

func (s *FleetService) ListTours(ctx context.Context) ([]model.Tour, error) {
	return s.tours.List(ctx)
}

func (s *FleetService) DeleteTour(ctx context.Context, id uuid.UUID) error {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.tours.Delete(ctx, id); err != nil {
		return err
	}
	_, err = s.refreshVehicle(ctx, tour.VehicleID)
	return err
}

// RefreshVehicleStatuses re-derives the status of every vehicle against
// today's tour schedule. Operator-triggered; returns how many vehicles
// changed.
func (s *FleetService) RefreshVehicleStatuses(ctx context.Context) (int, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, vehicle := range vehicles {
		hasTour, err := s.tours.VehicleHasTourOn(ctx, vehicle.ID, today())
		if err != nil {
			return updated, err
		}
		derived := status.DeriveVehicleStatus(vehicle.Status, hasTour)
		if derived == vehicle.Status {
			continue
		}
		if err := s.vehicles.UpdateStatus(ctx, vehicle.ID, derived); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *FleetService) refreshVehicle(ctx context.Context, vehicleID uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	hasTour, err := s.tours.VehicleHasTourOn(ctx, vehicle.ID, today())
	if err != nil {
		return nil, err
	}

	derived := status.DeriveVehicleStatus(vehicle.Status, hasTour)
	if derived != vehicle.Status {
		if err := s.vehicles.UpdateStatus(ctx, vehicle.ID, derived); err != nil {
			return nil, err
		}
		vehicle.Status = derived
	}
	return vehicle, nil
}

func (s *FleetService) validateTourInput(ctx context.Context, input TourInput) error {
	if input.Date.IsZero() {
		return fmt.Errorf("%w: tour date is required", ErrInvalidInput)
	}
	if _, err := s.drivers.GetByID(ctx, input.DriverID); err != nil {
		return mapNotFound(err)
	}
	if _, err := s.vehicles.GetByID(ctx, input.VehicleID); err != nil {
		return mapNotFound(err)
	}
	if len(input.ShipmentIDs) > 0 {
		shipments, err := s.shipments.GetMany(ctx, input.ShipmentIDs)
		if err != nil {
			return err
		}
		if len(shipments) != len(input.ShipmentIDs) {
			return fmt.Errorf("%w: one or more shipments do not exist", ErrInvalidInput)
		}
	}
	return nil
}

func today() time.Time {
	return dateOnly(time.Now().UTC())
}
