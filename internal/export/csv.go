// Package export renders orders, invoices and analytics into CSV and PDF
// documents. Monetary values are formatted as "X.XX€".
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"velodesk/internal/models"
)

var invoiceHeader = []string{"Invoice Number", "Date", "Branch", "Status", "Total"}

// WriteInvoicesCSV writes a header row plus one record per invoice.
func WriteInvoicesCSV(w io.Writer, invoices []models.Invoice) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(invoiceHeader); err != nil {
		return err
	}
	for _, inv := range invoices {
		rec := []string{
			inv.InvoiceNumber,
			inv.CreatedAt.UTC().Format("2006-01-02"),
			inv.BranchName,
			string(inv.Status),
			models.FormatEuros(inv.TotalAmount),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// InvoiceRow is one parsed record of an invoice CSV export.
type InvoiceRow struct {
	InvoiceNumber string
	Date          string
	Branch        string
	Status        string
	Total         string
}

// ReadInvoicesCSV parses a document produced by WriteInvoicesCSV.
func ReadInvoicesCSV(r io.Reader) ([]InvoiceRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) != len(invoiceHeader) {
		return nil, fmt.Errorf("unexpected header: %v", header)
	}
	var rows []InvoiceRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, InvoiceRow{
			InvoiceNumber: rec[0],
			Date:          rec[1],
			Branch:        rec[2],
			Status:        rec[3],
			Total:         rec[4],
		})
	}
	return rows, nil
}

var orderHeader = []string{"Order Number", "Date", "Branch", "Status", "Bikes"}

// WriteOrdersCSV writes a header row plus one record per order; the Bikes
// column is the total requested unit count.
func WriteOrdersCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(orderHeader); err != nil {
		return err
	}
	for _, o := range orders {
		total := 0
		for _, b := range o.Bikes {
			total += b.Quantity
		}
		rec := []string{
			o.OrderNumber,
			o.CreatedAt.UTC().Format("2006-01-02"),
			o.BranchName,
			string(o.Status),
			strconv.Itoa(total),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
