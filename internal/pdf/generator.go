package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/model"
)

// Generator renders invoices and delivery slips. It uses the built-in
// Helvetica with the cp1252 code page, which covers the French labels.
type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

func (g *Generator) Invoice(doc model.InvoiceDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr("FACTURE"), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Facture n° %s du %s", doc.Invoice.ID, formatDate(invoiceDate(doc.Invoice)))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addClientBlock(pdf, g.fontName, tr, doc.Client)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Expéditions facturées"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"N° de suivi", "Description", "Poids (kg)", "Volume (m³)", "Montant HT"}
	colWidths := []float64{38, 62, 25, 25, 30}
	drawTableRow(pdf, g.fontName, tr, headers, colWidths, true)

	for _, shipment := range doc.Shipments {
		row := []string{
			shipment.TrackingNumber,
			shipment.Description,
			shipment.Weight.StringFixed(2),
			shipment.Volume.StringFixed(2),
			formatCost(shipment.CalculatedCost),
		}
		drawTableRow(pdf, g.fontName, tr, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total HT : %s DA", doc.Invoice.AmountHT.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("TVA (19%%) : %s DA", doc.Invoice.TVA.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total TTC : %s DA", doc.Invoice.AmountTTC.StringFixed(2))), "", 1, "R", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Payé : %s DA", doc.Invoice.PaidAmount.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Reste à payer : %s DA", doc.Invoice.RemainingBalance().StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Statut : %s", invoiceStatusLabel(doc.Invoice.Status))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) DeliverySlip(slip model.DeliverySlip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr("BON DE LIVRAISON"), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("N° de suivi : %s", slip.Shipment.TrackingNumber)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addClientBlock(pdf, g.fontName, tr, slip.Client)
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Expédition"), "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	lines := []string{
		fmt.Sprintf("Destination : %s", safeValue(slip.Destination.Name)),
		fmt.Sprintf("Type de service : %s", safeValue(slip.ServiceType.Name)),
		fmt.Sprintf("Poids : %s kg", slip.Shipment.Weight.StringFixed(2)),
		fmt.Sprintf("Volume : %s m³", slip.Shipment.Volume.StringFixed(2)),
		fmt.Sprintf("Description : %s", safeValue(slip.Shipment.Description)),
		fmt.Sprintf("Date de création : %s", formatDate(slip.Shipment.CreatedAt)),
	}
	if slip.Shipment.IsInternational {
		lines = append(lines, "Envoi international")
	}
	if slip.Shipment.RequiresCustomsClearance {
		lines = append(lines, fmt.Sprintf("Dédouanement requis, valeur déclarée : %s DA", slip.Shipment.CustomsValue.StringFixed(2)))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr("Signature du destinataire : ______________________"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Signature du chauffeur : ______________________"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addClientBlock(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, client model.Client) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, tr("Client"), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	lines := []string{
		safeValue(client.Name),
		fmt.Sprintf("Adresse : %s", safeValue(client.Address)),
		fmt.Sprintf("Contact : %s", safeValue(client.ContactInfo)),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func invoiceStatusLabel(status model.InvoiceStatus) string {
	switch status {
	case model.InvoicePaid:
		return "Payée"
	case model.InvoicePartial:
		return "Partiellement payée"
	default:
		return "Impayée"
	}
}

func invoiceDate(invoice model.Invoice) time.Time {
	if !invoice.Date.IsZero() {
		return invoice.Date
	}
	return invoice.CreatedAt
}

func formatCost(cost decimal.NullDecimal) string {
	if !cost.Valid {
		return "—"
	}
	return cost.Decimal.StringFixed(2)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}
