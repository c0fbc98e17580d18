package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice, shipmentIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, invoice *model.Invoice) error
	ReplaceShipments(ctx context.Context, invoiceID uuid.UUID, shipmentIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice, shipmentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Shipments", "Client").Create(invoice).Error; err != nil {
			return err
		}
		return replaceInvoiceShipments(tx, invoice.ID, shipmentIDs)
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Shipments").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Omit("Shipments", "Client").Save(invoice).Error
}

func (r *invoiceRepository) ReplaceShipments(ctx context.Context, invoiceID uuid.UUID, shipmentIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceInvoiceShipments(tx, invoiceID, shipmentIDs)
	})
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", id).Error
}

func replaceInvoiceShipments(tx *gorm.DB, invoiceID uuid.UUID, shipmentIDs []uuid.UUID) error {
	if err := tx.Exec(`DELETE FROM invoice_shipments WHERE invoice_id = ?`, invoiceID).Error; err != nil {
		return err
	}
	for _, shipmentID := range shipmentIDs {
		if err := tx.Exec(`
			INSERT INTO invoice_shipments (invoice_id, shipment_id)
			VALUES (?, ?)
		`, invoiceID, shipmentID).Error; err != nil {
			return err
		}
	}
	return nil
}
