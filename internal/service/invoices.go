package service

import (
	"context"
	"fmt"

	"velodesk/internal/models"
)

type InvoiceLineInput struct {
	BikeTypeName string `json:"bikeTypeName"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"` // cents
	Total        int64  `json:"total"`     // cents
}

type CreateInvoiceInput struct {
	OrderID       int64              `json:"orderId"`
	Items         []InvoiceLineInput `json:"items"`
	TotalAmount   int64              `json:"totalAmount"` // cents
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	PdfURL        string             `json:"pdfUrl,omitempty"`
	PdfKey        string             `json:"pdfKey,omitempty"`
}

func validInvoiceStatus(st models.InvoiceStatus) bool {
	switch st {
	case models.InvoiceDraft, models.InvoiceSent, models.InvoicePaid:
		return true
	}
	return false
}

// Invoices lists the caller's invoices: managers those billed to them,
// the mechanic those they issued.
func (s *Service) Invoices(ctx context.Context, caller Caller) ([]models.Invoice, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	switch caller.Role {
	case models.RoleManager:
		return s.st.InvoicesByManager(ctx, caller.ID)
	case models.RoleMechanic:
		return s.st.InvoicesByMechanic(ctx, caller.ID)
	default:
		return []models.Invoice{}, nil
	}
}

func (s *Service) InvoiceByID(ctx context.Context, caller Caller, id int64) (*models.Invoice, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	inv, err := s.st.InvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	if caller.Role == models.RoleManager && inv.ManagerID != caller.ID {
		return nil, ErrForbidden
	}
	if caller.Role == models.RoleMechanic && inv.MechanicID != caller.ID {
		return nil, ErrForbidden
	}
	return inv, nil
}

// CreateInvoice bills a referenced order. Line totals must equal
// quantity*unitPrice and the invoice total must equal the sum of line
// totals; the schema does not derive either, so the boundary enforces both.
func (s *Service) CreateInvoice(ctx context.Context, caller Caller, in CreateInvoiceInput) (string, error) {
	if err := Authorize(caller, models.RoleMechanic).Err(); err != nil {
		return "", err
	}
	if len(in.Items) == 0 {
		return "", fmt.Errorf("%w: at least one line item required", ErrValidation)
	}
	var sum int64
	for i, it := range in.Items {
		if it.Quantity <= 0 {
			return "", fmt.Errorf("%w: item %d: quantity must be a positive integer", ErrValidation, i)
		}
		if it.UnitPrice <= 0 {
			return "", fmt.Errorf("%w: item %d: unit price must be a positive amount in cents", ErrValidation, i)
		}
		if it.Total != int64(it.Quantity)*it.UnitPrice {
			return "", fmt.Errorf("%w: item %d: total must equal quantity*unitPrice", ErrValidation, i)
		}
		sum += it.Total
	}
	if in.TotalAmount <= 0 || in.TotalAmount != sum {
		return "", fmt.Errorf("%w: totalAmount must equal the sum of item totals", ErrValidation)
	}

	order, err := s.st.OrderByID(ctx, in.OrderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", ErrNotFound
	}

	number, err := s.nextInvoiceNumber(ctx)
	if err != nil {
		return "", err
	}

	lines := make(models.InvoiceLines, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, models.InvoiceLine{
			BikeTypeName: it.BikeTypeName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Total:        it.Total,
		})
	}
	inv := &models.Invoice{
		InvoiceNumber: number,
		OrderID:       order.ID,
		MechanicID:    caller.ID,
		ManagerID:     order.ManagerID,
		BranchName:    order.BranchName,
		Items:         lines,
		TotalAmount:   in.TotalAmount,
		PaymentMethod: in.PaymentMethod,
		PdfURL:        in.PdfURL,
		PdfKey:        in.PdfKey,
		Status:        models.InvoiceDraft,
	}
	if err := s.st.CreateInvoice(ctx, inv); err != nil {
		return "", err
	}
	s.audit(ctx, caller.ID, "invoice_created", "invoice", inv.ID,
		map[string]any{"invoiceNumber": number, "orderId": order.ID})

	if mgr, err := s.st.UserByID(ctx, order.ManagerID); err == nil && mgr != nil {
		s.emit(ctx, Event{
			Type:        models.NotifInvoiceSent,
			RecipientID: mgr.ID,
			Title:       "Facture reçue",
			Body:        fmt.Sprintf("Facture %s - Montant: %s", number, models.FormatEuros(in.TotalAmount)),
			InvoiceID:   &inv.ID,
			URL:         fmt.Sprintf("/invoices/%d", inv.ID),
		})
	}
	return number, nil
}

// UpdateInvoiceStatus is allowed for the billed manager or the issuing
// mechanic. Unlike creation it raises no notification.
func (s *Service) UpdateInvoiceStatus(ctx context.Context, caller Caller, id int64, status models.InvoiceStatus) (*models.Invoice, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	if !validInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown invoice status %q", ErrValidation, status)
	}
	inv, err := s.st.InvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	if caller.Role == models.RoleManager && inv.ManagerID != caller.ID {
		return nil, ErrForbidden
	}
	if caller.Role == models.RoleMechanic && inv.MechanicID != caller.ID {
		return nil, ErrForbidden
	}
	if err := s.st.UpdateInvoiceStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "invoice_"+string(status), "invoice", id, nil)
	return s.st.InvoiceByID(ctx, id)
}
