// Package status derives document lifecycle states from related
// records: invoice payment status, vehicle availability and shipment
// status history decisions. All functions are pure; persistence stays
// with the caller.
package status

import (
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/model"
)

// tvaRate is the fixed 19% value-added tax.
var tvaRate = decimal.NewFromFloat(0.19)

// DeriveInvoiceStatus maps the paid amount against the tax-inclusive
// total. Overpayment still resolves to PAID.
func DeriveInvoiceStatus(amountTTC, paidAmount decimal.Decimal) model.InvoiceStatus {
	switch {
	case !paidAmount.IsPositive():
		return model.InvoiceUnpaid
	case paidAmount.GreaterThanOrEqual(amountTTC):
		return model.InvoicePaid
	default:
		return model.InvoicePartial
	}
}

// InvoiceTotals sums shipment costs into pre-tax, tax and tax-inclusive
// amounts. Shipments without a computed cost contribute zero, not an
// error. All three results carry 2 decimal places.
func InvoiceTotals(costs []decimal.NullDecimal) (ht, tva, ttc decimal.Decimal) {
	ht = decimal.Zero
	for _, c := range costs {
		if c.Valid {
			ht = ht.Add(c.Decimal)
		}
	}
	ht = ht.Round(2)
	tva = ht.Mul(tvaRate).Round(2)
	ttc = ht.Add(tva)
	return ht, tva, ttc
}
