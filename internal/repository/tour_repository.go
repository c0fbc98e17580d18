package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
)

type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tour, error)
	List(ctx context.Context) ([]model.Tour, error)
	Update(ctx context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	VehicleHasTourOn(ctx context.Context, vehicleID uuid.UUID, date time.Time) (bool, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Shipments", "Driver", "Vehicle").Create(tour).Error; err != nil {
			return err
		}
		return replaceTourShipments(tx, tour.ID, shipmentIDs)
	})
}

func (r *tourRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tour, error) {
	var tour model.Tour
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		Preload("Shipments").
		First(&tour, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) List(ctx context.Context) ([]model.Tour, error) {
	var tours []model.Tour
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		Preload("Shipments").
		Order("date DESC").
		Find(&tours).Error
	return tours, err
}

func (r *tourRepository) Update(ctx context.Context, tour *model.Tour, shipmentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Shipments", "Driver", "Vehicle").Save(tour).Error; err != nil {
			return err
		}
		return replaceTourShipments(tx, tour.ID, shipmentIDs)
	})
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tour{}, "id = ?", id).Error
}

func (r *tourRepository) VehicleHasTourOn(ctx context.Context, vehicleID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Tour{}).
		Where("vehicle_id = ? AND date = ?", vehicleID, date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func replaceTourShipments(tx *gorm.DB, tourID uuid.UUID, shipmentIDs []uuid.UUID) error {
	if err := tx.Exec(`DELETE FROM tour_shipments WHERE tour_id = ?`, tourID).Error; err != nil {
		return err
	}
	for _, shipmentID := range shipmentIDs {
		if err := tx.Exec(`
			INSERT INTO tour_shipments (tour_id, shipment_id)
			VALUES (?, ?)
		`, tourID, shipmentID).Error; err != nil {
			return err
		}
	}
	return nil
}
