package service

import (
	"context"

	"velodesk/internal/models"
	"velodesk/internal/store"
)

// Event describes a user-facing alert raised after a primary mutation has
// been persisted.
type Event struct {
	Type        models.NotificationType
	RecipientID string
	Title       string
	Body        string
	OrderID     *int64
	InvoiceID   *int64
	URL         string
}

// Hook consumes an event after the primary mutation commits. Hook failures
// are logged and swallowed: side effects never fail or roll back the
// operation that raised them.
type Hook func(ctx context.Context, evt Event) error

func (s *Service) emit(ctx context.Context, evt Event) {
	for _, h := range s.hooks {
		if err := h(ctx, evt); err != nil {
			s.lg.Warnw("notification hook failed",
				"type", evt.Type, "recipient", evt.RecipientID, "error", err)
		}
	}
}

// NotificationHook persists the event as an in-app notification row.
func NotificationHook(st *store.Store) Hook {
	return func(ctx context.Context, evt Event) error {
		return st.CreateNotification(ctx, &models.Notification{
			RecipientID:      evt.RecipientID,
			Type:             evt.Type,
			Title:            evt.Title,
			Body:             evt.Body,
			RelatedOrderID:   evt.OrderID,
			RelatedInvoiceID: evt.InvoiceID,
		})
	}
}
