package store

import (
	"context"
	"time"

	"velodesk/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Create(u).Error
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	if !s.available() {
		return nil, nil
	}
	var u models.User
	if err := s.conn(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	if !s.available() {
		return nil, nil
	}
	var u models.User
	if err := s.conn(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (s *Store) Managers(ctx context.Context) ([]models.User, error) {
	if !s.available() {
		return []models.User{}, nil
	}
	users := []models.User{}
	err := s.conn(ctx).Where("role = ?", models.RoleManager).Order("created_at desc").Find(&users).Error
	return users, err
}

// Mechanic returns the sole mechanic account, or nil when none exists.
func (s *Store) Mechanic(ctx context.Context) (*models.User, error) {
	if !s.available() {
		return nil, nil
	}
	var u models.User
	if err := s.conn(ctx).First(&u, "role = ?", models.RoleMechanic).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (s *Store) SaveUser(ctx context.Context, u *models.User) error {
	if !s.available() {
		return ErrUnavailable
	}
	return s.conn(ctx).Save(u).Error
}

func (s *Store) TouchLastSignedIn(ctx context.Context, id string) error {
	if !s.available() {
		return ErrUnavailable
	}
	now := time.Now()
	return s.conn(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("last_signed_in", &now).Error
}
