package status

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dztransit/logistics-api/internal/model"
)

func TestDeriveInvoiceStatus(t *testing.T) {
	ttc := decimal.NewFromInt(1000)

	cases := []struct {
		name string
		paid int64
		want model.InvoiceStatus
	}{
		{"unpaid", 0, model.InvoiceUnpaid},
		{"partial", 500, model.InvoicePartial},
		{"paid exactly", 1000, model.InvoicePaid},
		{"overpaid still paid", 1200, model.InvoicePaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveInvoiceStatus(ttc, decimal.NewFromInt(tc.paid))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveInvoiceStatus_ZeroTotal(t *testing.T) {
	got := DeriveInvoiceStatus(decimal.Zero, decimal.Zero)
	assert.Equal(t, model.InvoiceUnpaid, got)
}

func TestInvoiceTotals(t *testing.T) {
	costs := []decimal.NullDecimal{
		{Decimal: decimal.NewFromInt(850), Valid: true},
		{Decimal: decimal.NewFromInt(150), Valid: true},
		{Valid: false}, // no computed cost contributes zero
	}

	ht, tva, ttc := InvoiceTotals(costs)

	assert.Equal(t, "1000.00", ht.StringFixed(2))
	assert.Equal(t, "190.00", tva.StringFixed(2))
	assert.Equal(t, "1190.00", ttc.StringFixed(2))
	assert.True(t, ttc.Equal(ht.Add(tva)))
}

func TestInvoiceTotals_Idempotent(t *testing.T) {
	costs := []decimal.NullDecimal{
		{Decimal: decimal.RequireFromString("333.33"), Valid: true},
		{Decimal: decimal.RequireFromString("123.45"), Valid: true},
	}

	ht1, tva1, ttc1 := InvoiceTotals(costs)
	ht2, tva2, ttc2 := InvoiceTotals(costs)

	assert.True(t, ht1.Equal(ht2))
	assert.True(t, tva1.Equal(tva2))
	assert.True(t, ttc1.Equal(ttc2))
}

func TestInvoiceTotals_Empty(t *testing.T) {
	ht, tva, ttc := InvoiceTotals(nil)

	assert.True(t, ht.IsZero())
	assert.True(t, tva.IsZero())
	assert.True(t, ttc.IsZero())
}
