package service

import (
	"context"
	"fmt"
	"strings"

	"velodesk/internal/models"
)

type CreateBikeTypeInput struct {
	Name   string `json:"name"`
	NameFr string `json:"name_fr"`
	Price  int64  `json:"price"` // cents
}

type UpdateBikeTypeInput struct {
	Name   *string `json:"name,omitempty"`
	NameFr *string `json:"name_fr,omitempty"`
	Price  *int64  `json:"price,omitempty"`
}

// BikeTypes lists the active catalog; it is a public read.
func (s *Service) BikeTypes(ctx context.Context) ([]models.BikeType, error) {
	return s.st.BikeTypes(ctx)
}

func (s *Service) BikeTypeByID(ctx context.Context, id int64) (*models.BikeType, error) {
	bt, err := s.st.BikeTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, ErrNotFound
	}
	return bt, nil
}

func (s *Service) CreateBikeType(ctx context.Context, caller Caller, in CreateBikeTypeInput) (*models.BikeType, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.NameFr = strings.TrimSpace(in.NameFr)
	if in.Name == "" || in.NameFr == "" {
		return nil, fmt.Errorf("%w: name and name_fr required", ErrValidation)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive amount in cents", ErrValidation)
	}
	bt := &models.BikeType{
		Name:      in.Name,
		NameFr:    in.NameFr,
		Price:     in.Price,
		IsActive:  true,
		CreatedBy: caller.ID,
	}
	if err := s.st.CreateBikeType(ctx, bt); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "bike_type_created", "bike_type", bt.ID,
		map[string]any{"name": bt.Name, "price": bt.Price})
	return bt, nil
}

func (s *Service) UpdateBikeType(ctx context.Context, caller Caller, id int64, in UpdateBikeTypeInput) (*models.BikeType, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	bt, err := s.st.BikeTypeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bt == nil {
		return nil, ErrNotFound
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be a positive amount in cents", ErrValidation)
		}
		bt.Price = *in.Price
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		bt.Name = strings.TrimSpace(*in.Name)
	}
	if in.NameFr != nil && strings.TrimSpace(*in.NameFr) != "" {
		bt.NameFr = strings.TrimSpace(*in.NameFr)
	}
	if err := s.st.SaveBikeType(ctx, bt); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "bike_type_updated", "bike_type", bt.ID, in)
	return bt, nil
}

// DeleteBikeType deactivates a catalog entry; historical orders and invoices
// keep referencing it.
func (s *Service) DeleteBikeType(ctx context.Context, caller Caller, id int64) error {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return err
	}
	bt, err := s.st.BikeTypeByID(ctx, id)
	if err != nil {
		return err
	}
	if bt == nil {
		return ErrNotFound
	}
	if err := s.st.DeleteBikeType(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, caller.ID, "bike_type_deleted", "bike_type", id, nil)
	return nil
}
