package store

import (
	"context"

	"gorm.io/gorm/clause"

	"velodesk/internal/models"
)

// SavePushSubscription upserts on (user, endpoint): re-subscribing with the
// same endpoint refreshes the keys instead of duplicating the row.
func (s *Store) SavePushSubscription(ctx context.Context, sub *models.PushSubscription) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_agent"}),
	}).Create(sub).Error
}

func (s *Store) RemovePushSubscription(ctx context.Context, userID, endpoint string) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&models.PushSubscription{}).Error
}

func (s *Store) PushSubscriptionsByUser(ctx context.Context, userID string) ([]models.PushSubscription, error) {
	if !s.available() {
		return []models.PushSubscription{}, nil
	}
	subs := []models.PushSubscription{}
	err := s.conn(ctx).Where("user_id = ?", userID).Find(&subs).Error
	return subs, err
}
