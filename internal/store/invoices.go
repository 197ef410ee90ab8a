package store

import (
	"context"

	"velodesk/internal/models"
)

func (s *Store) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(inv).Error
}

func (s *Store) InvoiceByID(ctx context.Context, id int64) (*models.Invoice, error) {
	if !s.available() {
		return nil, nil
	}
	var inv models.Invoice
	if err := s.conn(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &inv, nil
}

func (s *Store) InvoiceByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	if !s.available() {
		return nil, nil
	}
	var inv models.Invoice
	if err := s.conn(ctx).First(&inv, "invoice_number = ?", number).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &inv, nil
}

func (s *Store) InvoicesByManager(ctx context.Context, managerID string) ([]models.Invoice, error) {
	if !s.available() {
		return []models.Invoice{}, nil
	}
	invoices := []models.Invoice{}
	err := s.conn(ctx).Where("manager_id = ?", managerID).Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (s *Store) InvoicesByMechanic(ctx context.Context, mechanicID string) ([]models.Invoice, error) {
	if !s.available() {
		return []models.Invoice{}, nil
	}
	invoices := []models.Invoice{}
	err := s.conn(ctx).Where("mechanic_id = ?", mechanicID).Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (s *Store) Invoices(ctx context.Context) ([]models.Invoice, error) {
	if !s.available() {
		return []models.Invoice{}, nil
	}
	invoices := []models.Invoice{}
	err := s.conn(ctx).Order("created_at desc").Find(&invoices).Error
	return invoices, err
}

func (s *Store) UpdateInvoiceStatus(ctx context.Context, id int64, status models.InvoiceStatus) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Model(&models.Invoice{}).Where("id = ?", id).
		Update("status", status).Error
}
