package service

import (
	"context"
	"fmt"
	"strings"

	"velodesk/internal/models"
	"velodesk/internal/scan"
)

type BikeLineInput struct {
	BikeTypeID int64 `json:"bikeTypeId"`
	Quantity   int   `json:"quantity"`
}

type CreateOrderInput struct {
	Bikes []BikeLineInput `json:"bikes"`
	Notes string          `json:"notes,omitempty"`
}

var orderStatusRank = map[models.OrderStatus]int{
	models.OrderPending:    0,
	models.OrderInProgress: 1,
	models.OrderCompleted:  2,
}

// Orders lists what the caller may see: managers their own orders, the
// mechanic all of them.
func (s *Service) Orders(ctx context.Context, caller Caller) ([]models.Order, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	switch caller.Role {
	case models.RoleManager:
		return s.st.OrdersByManager(ctx, caller.ID)
	case models.RoleMechanic:
		return s.st.Orders(ctx)
	default:
		return []models.Order{}, nil
	}
}

func (s *Service) OrderByID(ctx context.Context, caller Caller, id int64) (*models.Order, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	o, err := s.st.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	if caller.Role == models.RoleManager && o.ManagerID != caller.ID {
		return nil, ErrForbidden
	}
	return o, nil
}

// CreateOrder persists a pending order with the manager's branch snapshot,
// opens scan-progress items per line, audits, and alerts the mechanic. The
// notification is best-effort: a missing mechanic account is not an error.
func (s *Service) CreateOrder(ctx context.Context, caller Caller, in CreateOrderInput) (string, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return "", err
	}
	if len(in.Bikes) == 0 {
		return "", fmt.Errorf("%w: at least one bike line required", ErrValidation)
	}
	totalBikes := 0
	for _, b := range in.Bikes {
		if b.Quantity <= 0 {
			return "", fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
		}
		totalBikes += b.Quantity
	}

	user, err := s.st.UserByID(ctx, caller.ID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnauthenticated
	}
	branch := user.BranchName
	if branch == "" {
		branch = "Unknown Branch"
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return "", err
	}

	lines := make(models.BikeLines, 0, len(in.Bikes))
	for _, b := range in.Bikes {
		lines = append(lines, models.BikeLine{BikeTypeID: b.BikeTypeID, Quantity: b.Quantity})
	}
	order := &models.Order{
		OrderNumber: number,
		ManagerID:   caller.ID,
		BranchName:  branch,
		Bikes:       lines,
		Notes:       in.Notes,
		Status:      models.OrderPending,
	}
	if err := s.st.CreateOrder(ctx, order); err != nil {
		return "", err
	}
	for _, b := range in.Bikes {
		item := &models.OrderItem{
			OrderID:    order.ID,
			BikeTypeID: b.BikeTypeID,
			Quantity:   b.Quantity,
			Barcodes:   models.StringList{},
		}
		if err := s.st.CreateOrderItem(ctx, item); err != nil {
			s.lg.Warnw("order item create failed", "order", order.ID, "error", err)
		}
	}
	s.audit(ctx, caller.ID, "order_created", "order", order.ID,
		map[string]any{"orderNumber": number, "bikes": in.Bikes})

	if mech, err := s.st.Mechanic(ctx); err == nil && mech != nil {
		s.emit(ctx, Event{
			Type:        models.NotifOrderCreated,
			RecipientID: mech.ID,
			Title:       "Nouvelle commande de " + branch,
			Body:        fmt.Sprintf("Commande %s - %d vélos", number, totalBikes),
			OrderID:     &order.ID,
			URL:         fmt.Sprintf("/orders/%d", order.ID),
		})
	}
	return number, nil
}

// UpdateOrderStatus advances an order. Transitions only move forward
// (pending -> in_progress -> completed); repeating the current status is an
// idempotent no-op. Completion stamps completed_at and alerts the manager.
func (s *Service) UpdateOrderStatus(ctx context.Context, caller Caller, id int64, status models.OrderStatus) (*models.Order, error) {
	if err := Authorize(caller, models.RoleMechanic).Err(); err != nil {
		return nil, err
	}
	next, ok := orderStatusRank[status]
	if !ok {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	o, err := s.st.OrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	cur := orderStatusRank[o.Status]
	if next < cur {
		return nil, fmt.Errorf("%w: order status cannot move backwards (%s -> %s)", ErrValidation, o.Status, status)
	}
	if next == cur {
		return o, nil
	}

	if err := s.st.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "order_"+string(status), "order", id, nil)

	if status == models.OrderCompleted {
		if mgr, err := s.st.UserByID(ctx, o.ManagerID); err == nil && mgr != nil {
			s.emit(ctx, Event{
				Type:        models.NotifOrderCompleted,
				RecipientID: mgr.ID,
				Title:       "Commande complétée",
				Body:        fmt.Sprintf("La commande %s est prête", o.OrderNumber),
				OrderID:     &o.ID,
				URL:         fmt.Sprintf("/orders/%d", o.ID),
			})
		}
	}
	return s.st.OrderByID(ctx, id)
}

// OrderItems returns the scan-progress rows for an order the caller may see.
func (s *Service) OrderItems(ctx context.Context, caller Caller, orderID int64) ([]models.OrderItem, error) {
	if _, err := s.OrderByID(ctx, caller, orderID); err != nil {
		return nil, err
	}
	return s.st.OrderItemsByOrder(ctx, orderID)
}

// AddItemScan records one scanned barcode against an order line, rejecting
// duplicates and over-scans.
func (s *Service) AddItemScan(ctx context.Context, caller Caller, orderID, itemID int64, barcode string) (*models.OrderItem, error) {
	if err := Authorize(caller, models.RoleMechanic).Err(); err != nil {
		return nil, err
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode required", ErrValidation)
	}
	it, err := s.st.OrderItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil || it.OrderID != orderID {
		return nil, ErrNotFound
	}
	line := scan.Line{Quantity: it.Quantity, Barcodes: it.Barcodes}
	if err := line.Add(barcode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.st.UpdateOrderItemProgress(ctx, itemID, len(line.Barcodes), models.StringList(line.Barcodes)); err != nil {
		return nil, err
	}
	it.Barcodes = models.StringList(line.Barcodes)
	it.CompletedQuantity = len(line.Barcodes)
	return it, nil
}

// RemoveItemScan removes the scan at the given index, decrementing progress.
func (s *Service) RemoveItemScan(ctx context.Context, caller Caller, orderID, itemID int64, index int) (*models.OrderItem, error) {
	if err := Authorize(caller, models.RoleMechanic).Err(); err != nil {
		return nil, err
	}
	it, err := s.st.OrderItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil || it.OrderID != orderID {
		return nil, ErrNotFound
	}
	line := scan.Line{Quantity: it.Quantity, Barcodes: it.Barcodes}
	if err := line.Remove(index); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.st.UpdateOrderItemProgress(ctx, itemID, len(line.Barcodes), models.StringList(line.Barcodes)); err != nil {
		return nil, err
	}
	it.Barcodes = models.StringList(line.Barcodes)
	it.CompletedQuantity = len(line.Barcodes)
	return it, nil
}
