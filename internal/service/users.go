package service

import (
	"context"
	"fmt"
	"strings"

	"velodesk/internal/auth"
	"velodesk/internal/models"
)

type CreateAccountInput struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone,omitempty"`
	Role        models.Role `json:"role"`
	BranchName  string      `json:"branch_name,omitempty"`
	Siret       string      `json:"siret,omitempty"`
	CompanyName string      `json:"company_name,omitempty"`
}

type UpdateAccountInput struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	BranchName  *string `json:"branch_name,omitempty"`
	Siret       *string `json:"siret,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Password    *string `json:"password,omitempty"`
}

func validRole(r models.Role) bool {
	switch r {
	case models.RoleManager, models.RoleMechanic, models.RoleAdmin:
		return true
	}
	return false
}

func (s *Service) Me(ctx context.Context, caller Caller) (*models.User, error) {
	if err := Authorize(caller).Err(); err != nil {
		return nil, err
	}
	u, err := s.st.UserByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Managers lists all branch manager accounts; admin only.
func (s *Service) Managers(ctx context.Context, caller Caller) ([]models.User, error) {
	if err := Authorize(caller, models.RoleAdmin).Err(); err != nil {
		return nil, err
	}
	return s.st.Managers(ctx)
}

// Mechanic returns the sole mechanic account, or nil when none exists. It is
// a public read so pages can show the assigned mechanic before login.
func (s *Service) Mechanic(ctx context.Context) (*models.User, error) {
	return s.st.Mechanic(ctx)
}

func (s *Service) CreateAccount(ctx context.Context, caller Caller, in CreateAccountInput) (*models.User, error) {
	if err := Authorize(caller, models.RoleAdmin).Err(); err != nil {
		return nil, err
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}
	if !validRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         in.Role,
		BranchName:   in.BranchName,
		Siret:        in.Siret,
		CompanyName:  in.CompanyName,
		IsActive:     true,
	}
	if err := s.st.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "user_created", "user", 0,
		map[string]any{"email": u.Email, "role": u.Role})
	return u, nil
}

func (s *Service) UpdateAccount(ctx context.Context, caller Caller, id string, in UpdateAccountInput) (*models.User, error) {
	if err := Authorize(caller, models.RoleAdmin).Err(); err != nil {
		return nil, err
	}
	u, err := s.st.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.BranchName != nil {
		u.BranchName = *in.BranchName
	}
	if in.Siret != nil {
		u.Siret = *in.Siret
	}
	if in.CompanyName != nil {
		u.CompanyName = *in.CompanyName
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.st.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	s.audit(ctx, caller.ID, "user_updated", "user", 0, map[string]any{"id": u.ID})
	return u, nil
}
