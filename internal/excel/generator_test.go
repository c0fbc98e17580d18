package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dztransit/logistics-api/internal/model"
)

func TestJournalWritesExactMonetaryAmounts(t *testing.T) {
	// Wide enough to lose the last centime through a float64 round trip.
	cost := decimal.RequireFromString("123456789123456.78")

	journal := model.ShipmentJournal{
		PeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Rows: []model.JournalRow{
			{
				TrackingNumber:  "DZ2026000001",
				ClientName:      "SARL Numidia Import",
				DestinationName: "Oran",
				ServiceTypeName: "Standard",
				Weight:          decimal.NewFromInt(20),
				Volume:          decimal.NewFromFloat(1.5),
				CalculatedCost:  decimal.NullDecimal{Decimal: cost, Valid: true},
				Status:          model.ShipmentDelivered,
				CreatedAt:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			},
			{
				TrackingNumber:  "DZ2026000002",
				ClientName:      "EURL Atlas Froid",
				DestinationName: "Alger",
				ServiceTypeName: "Express",
				Weight:          decimal.NewFromInt(5),
				Volume:          decimal.NewFromFloat(0.2),
				Status:          model.ShipmentPending,
				CreatedAt:       time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC),
			},
		},
	}

	content, err := NewGenerator().Journal(journal)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	total, err := file.GetCellValue("Journal", "B5")
	require.NoError(t, err)
	assert.Equal(t, "123456789123456.78", total)

	rowCost, err := file.GetCellValue("Journal", "G8")
	require.NoError(t, err)
	assert.Equal(t, "123456789123456.78", rowCost)

	uncosted, err := file.GetCellValue("Journal", "G9")
	require.NoError(t, err)
	assert.Empty(t, uncosted)
}
