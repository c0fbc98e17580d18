package excel

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dztransit/logistics-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Journal writes the shipments journal workbook: a summary block on top
// and one row per shipment below it.
func (g *Generator) Journal(journal model.ShipmentJournal) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Journal"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totalCost := decimal.Zero
	for _, row := range journal.Rows {
		if row.CalculatedCost.Valid {
			totalCost = totalCost.Add(row.CalculatedCost.Decimal)
		}
	}

	set("A1", "Journal des expéditions")
	set("A2", "Début de période")
	set("B2", formatDate(journal.PeriodStart))
	set("A3", "Fin de période")
	set("B3", formatDate(journal.PeriodEnd))
	set("A4", "Nombre d'expéditions")
	set("B4", len(journal.Rows))
	set("A5", "Coût total calculé (DA)")
	set("B5", totalCost.StringFixed(2))

	tableRow := 7
	headers := []string{
		"N° de suivi",
		"Client",
		"Destination",
		"Type de service",
		"Poids (kg)",
		"Volume (m3)",
		"Coût calculé (DA)",
		"Statut",
		"Date de création",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, tableRow)
		if err != nil {
			return nil, err
		}
		set(cell, header)
	}

	for i, row := range journal.Rows {
		values := []interface{}{
			row.TrackingNumber,
			row.ClientName,
			row.DestinationName,
			row.ServiceTypeName,
			row.Weight.InexactFloat64(),
			row.Volume.InexactFloat64(),
			costValue(row.CalculatedCost),
			string(row.Status),
			formatDate(row.CreatedAt),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, tableRow+1+i)
			if err != nil {
				return nil, err
			}
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "D", 24)
	_ = file.SetColWidth(sheet, "E", "G", 16)
	_ = file.SetColWidth(sheet, "H", "I", 18)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Monetary amounts go in as fixed-point strings; a float64 round trip
// can lose the last centime on large totals.
func costValue(cost decimal.NullDecimal) interface{} {
	if !cost.Valid {
		return ""
	}
	return cost.Decimal.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
