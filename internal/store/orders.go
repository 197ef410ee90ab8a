package store

import (
	"context"
	"time"

	"velodesk/internal/models"
)

func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(o).Error
}

func (s *Store) OrderByID(ctx context.Context, id int64) (*models.Order, error) {
	if !s.available() {
		return nil, nil
	}
	var o models.Order
	if err := s.conn(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &o, nil
}

func (s *Store) OrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	if !s.available() {
		return nil, nil
	}
	var o models.Order
	if err := s.conn(ctx).First(&o, "order_number = ?", number).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &o, nil
}

func (s *Store) OrdersByManager(ctx context.Context, managerID string) ([]models.Order, error) {
	if !s.available() {
		return []models.Order{}, nil
	}
	orders := []models.Order{}
	err := s.conn(ctx).Where("manager_id = ?", managerID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	if !s.available() {
		return []models.Order{}, nil
	}
	orders := []models.Order{}
	err := s.conn(ctx).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus persists the new status and stamps completed_at exactly
// when the order transitions to completed.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	if !s.available() {
		return ErrUnavailable
	}
	updates := map[string]any{"status": status}
	if status == models.OrderCompleted {
		updates["completed_at"] = time.Now()
	}
	return s.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Store) CreateOrderItem(ctx context.Context, it *models.OrderItem) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(it).Error
}

func (s *Store) OrderItemsByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	if !s.available() {
		return []models.OrderItem{}, nil
	}
	items := []models.OrderItem{}
	err := s.conn(ctx).Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (s *Store) OrderItemByID(ctx context.Context, id int64) (*models.OrderItem, error) {
	if !s.available() {
		return nil, nil
	}
	var it models.OrderItem
	if err := s.conn(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &it, nil
}

func (s *Store) UpdateOrderItemProgress(ctx context.Context, id int64, completed int, barcodes models.StringList) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Model(&models.OrderItem{}).Where("id = ?", id).
		Updates(map[string]any{"completed_quantity": completed, "barcodes": barcodes}).Error
}
