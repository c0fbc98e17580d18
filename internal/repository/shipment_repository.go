package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *model.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Shipment, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Shipment, error)
	List(ctx context.Context) ([]model.Shipment, error)
	Update(ctx context.Context, shipment *model.Shipment) error
	Delete(ctx context.Context, id uuid.UUID) error

	AppendStatusHistory(ctx context.Context, shipmentID uuid.UUID, status model.ShipmentStatus) error
	Journal(ctx context.Context, from, to time.Time) ([]model.JournalRow, error)
}

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (r *shipmentRepository) Create(ctx context.Context, shipment *model.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *shipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shipment, error) {
	var shipment model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Destination").
		Preload("ServiceType").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&shipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Shipment, error) {
	var shipment model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("ServiceType").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&shipment, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepository) GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Shipment, error) {
	if len(ids) == 0 {
		return []model.Shipment{}, nil
	}
	var shipments []model.Shipment
	err := r.db.WithContext(ctx).Find(&shipments, "id IN ?", ids).Error
	return shipments, err
}

func (r *shipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	var shipments []model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Destination").
		Preload("ServiceType").
		Order("created_at DESC").
		Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepository) Update(ctx context.Context, shipment *model.Shipment) error {
	return r.db.WithContext(ctx).Omit("Client", "Destination", "ServiceType", "StatusHistory").Save(shipment).Error
}

func (r *shipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Shipment{}, "id = ?", id).Error
}

// AppendStatusHistory inserts one history row. History is append-only;
// no update or delete path exists anywhere.
func (r *shipmentRepository) AppendStatusHistory(ctx context.Context, shipmentID uuid.UUID, status model.ShipmentStatus) error {
	entry := model.ShipmentStatusHistory{
		ShipmentID: shipmentID,
		Status:     status,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *shipmentRepository) Journal(ctx context.Context, from, to time.Time) ([]model.JournalRow, error) {
	var rows []model.JournalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.tracking_number,
			c.name AS client_name,
			d.name AS destination_name,
			st.name AS service_type_name,
			s.weight,
			s.volume,
			s.calculated_cost,
			s.status,
			s.created_at
		FROM shipments s
		JOIN clients c ON c.id = s.client_id
		JOIN destinations d ON d.id = s.destination_id
		JOIN service_types st ON st.id = s.service_type_id
		WHERE s.created_at >= ? AND s.created_at < ?
		ORDER BY s.created_at ASC
	`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
