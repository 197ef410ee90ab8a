package service

import (
	"context"

	"velodesk/internal/models"
)

func (s *Service) Notifications(ctx context.Context, caller Caller) ([]models.Notification, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	return s.st.NotificationsByRecipient(ctx, caller.ID)
}

func (s *Service) UnreadNotifications(ctx context.Context, caller Caller) ([]models.Notification, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	return s.st.UnreadNotifications(ctx, caller.ID)
}

func (s *Service) UnreadCount(ctx context.Context, caller Caller) (int, error) {
	ns, err := s.UnreadNotifications(ctx, caller)
	if err != nil {
		return 0, err
	}
	return len(ns), nil
}

// MarkNotificationRead flips is_read for a notification the caller owns.
// Re-marking an already-read notification succeeds without effect.
func (s *Service) MarkNotificationRead(ctx context.Context, caller Caller, id int64) error {
	if err := Authorize(caller).Err(); err != nil {
		return err
	}
	n, err := s.st.NotificationByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}
	if n.RecipientID != caller.ID {
		return ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	return s.st.MarkNotificationRead(ctx, id)
}
