package store

import (
	"context"

	"velodesk/internal/models"
)

func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(n).Error
}

func (s *Store) NotificationByID(ctx context.Context, id int64) (*models.Notification, error) {
	if !s.available() {
		return nil, nil
	}
	var n models.Notification
	if err := s.conn(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &n, nil
}

func (s *Store) NotificationsByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	if !s.available() {
		return []models.Notification{}, nil
	}
	ns := []models.Notification{}
	err := s.conn(ctx).Where("recipient_id = ?", recipientID).Order("created_at desc").Find(&ns).Error
	return ns, err
}

func (s *Store) UnreadNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	if !s.available() {
		return []models.Notification{}, nil
	}
	ns := []models.Notification{}
	err := s.conn(ctx).Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Order("created_at desc").Find(&ns).Error
	return ns, err
}

// MarkNotificationRead flips is_read unconditionally; ownership is checked by
// the caller.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Model(&models.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}
