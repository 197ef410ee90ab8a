package store

import (
	"context"

	"velodesk/internal/models"
)

func (s *Store) AppendAudit(ctx context.Context, entry *models.AuditLog) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(entry).Error
}

func (s *Store) AuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if !s.available() {
		return []models.AuditLog{}, nil
	}
	if limit <= 0 {
		limit = 100
	}
	logs := []models.AuditLog{}
	err := s.conn(ctx).Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

func (s *Store) AuditLogsByUser(ctx context.Context, userID string, limit int) ([]models.AuditLog, error) {
	if !s.available() {
		return []models.AuditLog{}, nil
	}
	if limit <= 0 {
		limit = 100
	}
	logs := []models.AuditLog{}
	err := s.conn(ctx).Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
