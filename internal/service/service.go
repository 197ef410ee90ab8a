// Package service is the domain operations layer: it authorizes the caller,
// validates input, composes store calls and triggers best-effort side effects.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"velodesk/internal/models"
	"velodesk/internal/store"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
)

// Caller identifies the authenticated user an operation runs as. A zero
// Caller is an anonymous request.
type Caller struct {
	ID   string
	Role models.Role
}

type Service struct {
	st    *store.Store
	lg    *zap.SugaredLogger
	hooks []Hook
}

func New(st *store.Store, lg *zap.SugaredLogger, hooks ...Hook) *Service {
	return &Service{st: st, lg: lg, hooks: hooks}
}

// audit appends an audit entry; failures are logged, never surfaced, so a
// broken audit trail cannot fail the primary mutation.
func (s *Service) audit(ctx context.Context, userID, action, entityType string, entityID int64, details any) {
	entry := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    models.MarshalDetails(details),
	}
	if err := s.st.AppendAudit(ctx, entry); err != nil {
		s.lg.Warnw("audit append failed", "action", action, "error", err)
	}
}
