package store

import (
	"context"
	"time"

	"velodesk/internal/models"
)

func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(sess).Error
}

func (s *Store) RevokeSession(ctx context.Context, jti string) error {
	if !s.available() {
		return ErrUnavailable
	}
	now := time.Now()
	return s.conn(ctx).Model(&models.Session{}).Where("jti = ?", jti).
		Update("revoked_at", &now).Error
}
