package store

import (
	"context"

	"velodesk/internal/models"
)

func (s *Store) CreateBikeType(ctx context.Context, bt *models.BikeType) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(bt).Error
}

// BikeTypes lists active catalog entries only; soft-deleted rows stay out of
// creation pickers but remain reachable by id.
func (s *Store) BikeTypes(ctx context.Context) ([]models.BikeType, error) {
	if !s.available() {
		return []models.BikeType{}, nil
	}
	types := []models.BikeType{}
	err := s.conn(ctx).Where("is_active = ?", true).Order("name").Find(&types).Error
	return types, err
}

func (s *Store) BikeTypeByID(ctx context.Context, id int64) (*models.BikeType, error) {
	if !s.available() {
		return nil, nil
	}
	var bt models.BikeType
	if err := s.conn(ctx).First(&bt, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &bt, nil
}

func (s *Store) SaveBikeType(ctx context.Context, bt *models.BikeType) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Save(bt).Error
}

// DeleteBikeType is a soft delete: the row is deactivated, never removed.
func (s *Store) DeleteBikeType(ctx context.Context, id int64) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Model(&models.BikeType{}).Where("id = ?", id).
		Update("is_active", false).Error
}
