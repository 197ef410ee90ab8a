package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"velodesk/internal/models"
)

func at(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func fixtureOrders() []models.Order {
	return []models.Order{
		{ID: 3, Status: models.OrderPending, CreatedAt: at("2026-03-03T09:00:00Z")},
		{ID: 2, Status: models.OrderCompleted, CreatedAt: at("2026-03-02T08:00:00Z"), CompletedAt: ptr(at("2026-03-02T12:00:00Z"))},
		{ID: 1, Status: models.OrderCompleted, CreatedAt: at("2026-03-01T08:00:00Z"), CompletedAt: ptr(at("2026-03-01T11:00:00Z"))},
	}
}

func fixtureInvoices() []models.Invoice {
	return []models.Invoice{
		{ID: 2, OrderID: 2, TotalAmount: 10000, Status: models.InvoiceSent, CreatedAt: at("2026-03-02T13:00:00Z")},
		{ID: 1, OrderID: 1, TotalAmount: 5000, Status: models.InvoicePaid, CreatedAt: at("2026-03-01T12:00:00Z")},
	}
}

func TestBuildManagerDashboard(t *testing.T) {
	d := BuildManagerDashboard(fixtureOrders(), fixtureInvoices())

	assert.Equal(t, 3, d.TotalOrders)
	assert.Equal(t, 2, d.CompletedOrders)
	assert.Equal(t, 1, d.PendingOrders)
	assert.Equal(t, 0, d.InProgressOrders)
	assert.Equal(t, int64(15000), d.TotalRevenue)
	assert.Equal(t, 1, d.PaidInvoices)
	assert.Equal(t, 1, d.PendingInvoices)
	// (4h + 3h) / 2 = 3.5
	assert.Equal(t, 3.5, d.AvgAssemblyTime)
	assert.Len(t, d.RecentOrders, 3)
	assert.Len(t, d.RecentInvoices, 2)
}

func TestBuildMechanicDashboardCountsOnlyInvoicedOrders(t *testing.T) {
	orders := fixtureOrders()
	// invoice only order 1
	invoices := []models.Invoice{
		{ID: 1, OrderID: 1, TotalAmount: 5000, Status: models.InvoicePaid, CreatedAt: at("2026-03-01T12:00:00Z")},
	}

	d := BuildMechanicDashboard(orders, invoices)

	assert.Equal(t, 1, d.TotalOrders)
	assert.Equal(t, 1, d.CompletedOrders)
	assert.Equal(t, int64(5000), d.TotalRevenue)
	assert.Equal(t, 1, d.PaidInvoices)
	assert.Equal(t, 3.0, d.AvgAssemblyTime)
}

func TestRecentCappedAtFive(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 8; i++ {
		orders = append(orders, models.Order{ID: int64(8 - i), Status: models.OrderPending})
	}
	d := BuildManagerDashboard(orders, nil)
	assert.Len(t, d.RecentOrders, 5)
	assert.Equal(t, int64(8), d.RecentOrders[0].ID)
}

func TestOrdersPerDay(t *testing.T) {
	orders := []models.Order{
		{CreatedAt: at("2026-03-02T23:30:00Z")},
		{CreatedAt: at("2026-03-02T10:00:00Z")},
		{CreatedAt: at("2026-03-01T10:00:00Z")},
	}
	points := OrdersPerDay(orders)

	assert.Equal(t, []CountPoint{
		{Date: "2026-03-01", Count: 1},
		{Date: "2026-03-02", Count: 2},
	}, points)
}

func TestRevenuePerDay(t *testing.T) {
	points := RevenuePerDay(fixtureInvoices())

	assert.Equal(t, []RevenuePoint{
		{Date: "2026-03-01", Revenue: 5000},
		{Date: "2026-03-02", Revenue: 10000},
	}, points)
}

func TestStatusDistribution(t *testing.T) {
	d := StatusDistribution(fixtureOrders())
	assert.Equal(t, Distribution{Pending: 1, InProgress: 0, Completed: 2}, d)
}

func TestAvgAssemblyIgnoresUncompleted(t *testing.T) {
	assert.Equal(t, 0.0, avgAssemblyHours([]models.Order{{Status: models.OrderPending}}))
}
