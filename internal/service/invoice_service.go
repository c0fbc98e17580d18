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

type InvoicePDFGenerator interface {
	Invoice(doc model.InvoiceDocument) ([]byte, error)
}

type InvoiceService struct {
	invoices  repository.InvoiceRepository
	shipments repository.ShipmentRepository
	clients   repository.ClientRepository
	pdf       InvoicePDFGenerator
	log       zerolog.Logger
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	shipments repository.ShipmentRepository,
	clients repository.ClientRepository,
	pdf InvoicePDFGenerator,
	log zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoices:  invoices,
		shipments: shipments,
		clients:   clients,
		pdf:       pdf,
		log:       log,
	}
}

type CreateInvoiceInput struct {
	ClientID    uuid.UUID
	ShipmentIDs []uuid.UUID
}

type UpdateInvoiceInput struct {
	ClientID    *uuid.UUID
	PaidAmount  *decimal.Decimal
	ShipmentIDs *[]uuid.UUID
}

func (s *InvoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*model.Invoice, error) {
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.checkShipmentsExist(ctx, input.ShipmentIDs); err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		ClientID:   input.ClientID,
		Date:       time.Now().UTC(),
		PaidAmount: decimal.Zero,
		Status:     status.DeriveInvoiceStatus(decimal.Zero, decimal.Zero),
	}
	if err := s.invoices.Create(ctx, invoice, input.ShipmentIDs); err != nil {
		return nil, err
	}

	// The shipment set was just established, so totals follow.
	return s.RecomputeTotals(ctx, invoice.ID)
}

func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, input UpdateInvoiceInput) (*model.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if input.ClientID != nil {
		if _, err := s.clients.GetByID(ctx, *input.ClientID); err != nil {
			return nil, mapNotFound(err)
		}
		invoice.ClientID = *input.ClientID
	}
	if input.PaidAmount != nil {
		if input.PaidAmount.IsNegative() {
			return nil, fmt.Errorf("%w: paid amount cannot be negative", ErrInvalidInput)
		}
		invoice.PaidAmount = *input.PaidAmount
	}

	// Status is derived immediately before every save, never trusted
	// from the caller.
	invoice.Status = status.DeriveInvoiceStatus(invoice.AmountTTC, invoice.PaidAmount)
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if input.ShipmentIDs != nil {
		if err := s.checkShipmentsExist(ctx, *input.ShipmentIDs); err != nil {
			return nil, err
		}
		if err := s.invoices.ReplaceShipments(ctx, invoice.ID, *input.ShipmentIDs); err != nil {
			return nil, err
		}
		return s.RecomputeTotals(ctx, invoice.ID)
	}

	return s.invoices.GetByID(ctx, invoice.ID)
}

// RecomputeTotals sums the calculated costs of the invoice's shipments
// into HT/TVA/TTC and re-derives the payment status. Explicit only;
// nothing recomputes totals behind the caller's back.
func (s *InvoiceService) RecomputeTotals(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	costs := make([]decimal.NullDecimal, 0, len(invoice.Shipments))
	for _, shipment := range invoice.Shipments {
		costs = append(costs, shipment.CalculatedCost)
	}

	invoice.AmountHT, invoice.TVA, invoice.AmountTTC = status.InvoiceTotals(costs)
	invoice.Status = status.DeriveInvoiceStatus(invoice.AmountTTC, invoice.PaidAmount)

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// RecordPayment adds a payment against the invoice. The payment path
// rejects amounts that would push paid beyond the tax-inclusive total;
// status derivation itself still tolerates overpaid records.
func (s *InvoiceService) RecordPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*model.Invoice, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}

	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	newPaid := invoice.PaidAmount.Add(amount)
	if newPaid.GreaterThan(invoice.AmountTTC) {
		return nil, fmt.Errorf("%w: payment exceeds remaining balance of %s", ErrInvalidInput, invoice.RemainingBalance())
	}

	invoice.PaidAmount = newPaid
	invoice.Status = status.DeriveInvoiceStatus(invoice.AmountTTC, invoice.PaidAmount)

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoices.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.invoices.Delete(ctx, id)
}

type InvoicePDFResult struct {
	FileName string
	Content  []byte
}

func (s *InvoiceService) GeneratePDF(ctx context.Context, id uuid.UUID) (*InvoicePDFResult, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	doc := model.InvoiceDocument{
		Invoice:   *invoice,
		Shipments: invoice.Shipments,
	}
	if invoice.Client != nil {
		doc.Client = *invoice.Client
	}

	content, err := s.pdf.Invoice(doc)
	if err != nil {
		return nil, err
	}
	return &InvoicePDFResult{
		FileName: fmt.Sprintf("facture-%s.pdf", invoice.ID),
		Content:  content,
	}, nil
}

func (s *InvoiceService) checkShipmentsExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	shipments, err := s.shipments.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	if len(shipments) != len(ids) {
		return fmt.Errorf("%w: one or more shipments do not exist", ErrInvalidInput)
	}
	return nil
}
