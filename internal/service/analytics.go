package service

import (
	"context"

	"velodesk/internal/analytics"
	"velodesk/internal/models"
)

// ManagerDashboard loads the caller's orders and invoices and reduces them
// in memory; the math lives in the analytics package.
func (s *Service) ManagerDashboard(ctx context.Context, caller Caller) (*analytics.ManagerDashboard, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	orders, err := s.st.OrdersByManager(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.st.InvoicesByManager(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	d := analytics.BuildManagerDashboard(orders, invoices)
	return &d, nil
}

func (s *Service) MechanicDashboard(ctx context.Context, caller Caller) (*analytics.MechanicDashboard, error) {
	if err := Authorize(caller, models.RoleMechanic).Err(); err != nil {
		return nil, err
	}
	invoices, err := s.st.InvoicesByMechanic(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	orders, err := s.st.Orders(ctx)
	if err != nil {
		return nil, err
	}
	d := analytics.BuildMechanicDashboard(orders, invoices)
	return &d, nil
}

func (s *Service) OrdersOverTime(ctx context.Context, caller Caller) ([]analytics.CountPoint, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	orders, err := s.st.OrdersByManager(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return analytics.OrdersPerDay(orders), nil
}

func (s *Service) RevenueOverTime(ctx context.Context, caller Caller) ([]analytics.RevenuePoint, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	invoices, err := s.st.InvoicesByManager(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return analytics.RevenuePerDay(invoices), nil
}

func (s *Service) OrderStatusDistribution(ctx context.Context, caller Caller) (*analytics.Distribution, error) {
	if err := Authorize(caller, models.RoleManager).Err(); err != nil {
		return nil, err
	}
	orders, err := s.st.OrdersByManager(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	d := analytics.StatusDistribution(orders)
	return &d, nil
}
