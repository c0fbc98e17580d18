package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dztransit/logistics-api/internal/model"
)

type invoiceFixture struct {
	svc       *InvoiceService
	invoices  *fakeInvoiceRepo
	shipments *fakeShipmentRepo
	clients   *fakeClientRepo

	client model.Client
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	ctx := context.Background()

	shipments := newFakeShipmentRepo()
	invoices := newFakeInvoiceRepo(shipments)
	clients := newFakeClientRepo()

	client := model.Client{Name: "EURL Atlas Distribution"}
	require.NoError(t, clients.Create(ctx, &client))

	return &invoiceFixture{
		svc:       NewInvoiceService(invoices, shipments, clients, stubDocumentGenerator{}, zerolog.Nop()),
		invoices:  invoices,
		shipments: shipments,
		clients:   clients,
		client:    client,
	}
}

func (f *invoiceFixture) addShipment(t *testing.T, cost decimal.NullDecimal) uuid.UUID {
	t.Helper()
	shipment := model.Shipment{
		TrackingNumber: "DZ2026" + uuid.NewString()[:6],
		ClientID:       f.client.ID,
		DestinationID:  uuid.New(),
		ServiceTypeID:  uuid.New(),
		Weight:         decimal.NewFromInt(10),
		Volume:         decimal.NewFromInt(1),
		CalculatedCost: cost,
		Status:         model.ShipmentPending,
	}
	require.NoError(t, f.shipments.Create(context.Background(), &shipment))
	return shipment.ID
}

func cost(amount int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(amount), Valid: true}
}

func TestInvoiceCreateComputesTotals(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	b := f.addShipment(t, cost(500))

	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a, b},
	})
	require.NoError(t, err)

	assert.Equal(t, "1500", invoice.AmountHT.String())
	assert.Equal(t, "285", invoice.TVA.String())
	assert.Equal(t, "1785", invoice.AmountTTC.String())
	assert.Equal(t, model.InvoiceUnpaid, invoice.Status)
}

func TestInvoiceCreateNullCostCountsAsZero(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	priced := f.addShipment(t, cost(1000))
	unpriced := f.addShipment(t, decimal.NullDecimal{})

	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{priced, unpriced},
	})
	require.NoError(t, err)

	assert.Equal(t, "1000", invoice.AmountHT.String())
	assert.Equal(t, "1190", invoice.AmountTTC.String())
}

func TestInvoiceCreateUnknownShipment(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.Create(context.Background(), CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInvoiceCreateUnknownClient(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.Create(context.Background(), CreateInvoiceInput{ClientID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvoiceRecomputeTotalsIsIdempotent(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)

	again, err := f.svc.RecomputeTotals(ctx, invoice.ID)
	require.NoError(t, err)

	assert.True(t, invoice.AmountHT.Equal(again.AmountHT))
	assert.True(t, invoice.TVA.Equal(again.TVA))
	assert.True(t, invoice.AmountTTC.Equal(again.AmountTTC))
	assert.Equal(t, invoice.Status, again.Status)
}

func TestInvoiceRecordPayment(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)
	require.Equal(t, "1190", invoice.AmountTTC.String())

	invoice, err = f.svc.RecordPayment(ctx, invoice.ID, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePartial, invoice.Status)
	assert.Equal(t, "690", invoice.RemainingBalance().String())

	invoice, err = f.svc.RecordPayment(ctx, invoice.ID, decimal.NewFromInt(690))
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePaid, invoice.Status)
	assert.True(t, invoice.RemainingBalance().IsZero())
}

func TestInvoiceRecordPaymentRejectsOverpayment(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)

	_, err = f.svc.RecordPayment(ctx, invoice.ID, decimal.NewFromInt(2000))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.RecordPayment(ctx, invoice.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInvoiceUpdateDerivesStatusBeforeSave(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)

	paid := decimal.NewFromInt(1190)
	invoice, err = f.svc.Update(ctx, invoice.ID, UpdateInvoiceInput{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePaid, invoice.Status)
}

func TestInvoiceUpdateReplaceShipmentsRecomputes(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	b := f.addShipment(t, cost(200))

	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)
	require.Equal(t, "1000", invoice.AmountHT.String())

	ids := []uuid.UUID{b}
	invoice, err = f.svc.Update(ctx, invoice.ID, UpdateInvoiceInput{ShipmentIDs: &ids})
	require.NoError(t, err)
	assert.Equal(t, "200", invoice.AmountHT.String())
	assert.Equal(t, "238", invoice.AmountTTC.String())
}

func TestInvoiceGeneratePDF(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	a := f.addShipment(t, cost(1000))
	invoice, err := f.svc.Create(ctx, CreateInvoiceInput{
		ClientID:    f.client.ID,
		ShipmentIDs: []uuid.UUID{a},
	})
	require.NoError(t, err)

	result, err := f.svc.GeneratePDF(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "facture-"+invoice.ID.String()+".pdf", result.FileName)
	assert.NotEmpty(t, result.Content)
}
