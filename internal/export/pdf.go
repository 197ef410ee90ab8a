package export

import (
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"velodesk/internal/models"
)

type Metric struct {
	Label string
	Value string
}

// Report is the input of the analytics PDF: a metrics block followed by
// order and invoice tables.
type Report struct {
	Title     string
	DateRange string
	Metrics   []Metric
	Orders    []models.Order
	Invoices  []models.Invoice
}

// WriteAnalyticsPDF renders the report as an A4 document with automatic
// page breaks.
func WriteAnalyticsPDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, tr("Généré le: "+time.Now().Format("02/01/2006")), "", 0, "L", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(r.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr("Période: "+r.DateRange), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, tr("Métriques Clés"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, m := range r.Metrics {
		pdf.CellFormat(0, 7, tr(m.Label+": "+m.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	if len(r.Orders) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr("Commandes"), "", 1, "L", false, 0, "")
		ordersTable(pdf, tr, r.Orders)
		pdf.Ln(5)
	}

	if len(r.Invoices) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr("Factures"), "", 1, "L", false, 0, "")
		invoicesTable(pdf, tr, r.Invoices)
	}

	return pdf.Output(w)
}

func ordersTable(pdf *fpdf.Fpdf, tr func(string) string, orders []models.Order) {
	widths := []float64{40, 50, 30, 30, 20}
	headers := []string{"N° Commande", "Succursale", "Statut", "Date", "Vélos"}
	tableHeader(pdf, tr, widths, headers)
	pdf.SetFont("Helvetica", "", 10)
	for _, o := range orders {
		total := 0
		for _, b := range o.Bikes {
			total += b.Quantity
		}
		cells := []string{
			o.OrderNumber,
			o.BranchName,
			string(o.Status),
			o.CreatedAt.UTC().Format("2006-01-02"),
			strconv.Itoa(total),
		}
		tableRow(pdf, tr, widths, cells)
	}
}

func invoicesTable(pdf *fpdf.Fpdf, tr func(string) string, invoices []models.Invoice) {
	widths := []float64{40, 50, 30, 30, 25}
	headers := []string{"N° Facture", "Succursale", "Statut", "Date", "Montant"}
	tableHeader(pdf, tr, widths, headers)
	pdf.SetFont("Helvetica", "", 10)
	for _, inv := range invoices {
		cells := []string{
			inv.InvoiceNumber,
			inv.BranchName,
			string(inv.Status),
			inv.CreatedAt.UTC().Format("2006-01-02"),
			models.FormatEuros(inv.TotalAmount),
		}
		tableRow(pdf, tr, widths, cells)
	}
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, headers []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, cells []string) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
