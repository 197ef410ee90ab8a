// Package analytics reduces already-loaded order and invoice slices into
// dashboard aggregates. It touches no storage so the math is testable on its
// own; volumes are small enough that full in-memory scans are fine.
package analytics

import (
	"math"
	"sort"
	"time"

	"velodesk/internal/models"
)

const recentLimit = 5

type ManagerDashboard struct {
	TotalOrders      int              `json:"totalOrders"`
	CompletedOrders  int              `json:"completedOrders"`
	PendingOrders    int              `json:"pendingOrders"`
	InProgressOrders int              `json:"inProgressOrders"`
	TotalRevenue     int64            `json:"totalRevenue"` // cents
	PaidInvoices     int              `json:"paidInvoices"`
	PendingInvoices  int              `json:"pendingInvoices"`
	AvgAssemblyTime  float64          `json:"avgAssemblyTime"` // hours, 1 decimal
	RecentOrders     []models.Order   `json:"recentOrders"`
	RecentInvoices   []models.Invoice `json:"recentInvoices"`
}

type MechanicDashboard struct {
	TotalOrders     int              `json:"totalOrders"`
	CompletedOrders int              `json:"completedOrders"`
	TotalRevenue    int64            `json:"totalRevenue"`
	PaidInvoices    int              `json:"paidInvoices"`
	AvgAssemblyTime float64          `json:"avgAssemblyTime"`
	RecentInvoices  []models.Invoice `json:"recentInvoices"`
}

type CountPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type RevenuePoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"` // cents
}

type Distribution struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// BuildManagerDashboard expects orders and invoices newest first.
func BuildManagerDashboard(orders []models.Order, invoices []models.Invoice) ManagerDashboard {
	d := ManagerDashboard{
		TotalOrders:     len(orders),
		AvgAssemblyTime: avgAssemblyHours(orders),
		RecentOrders:    head(orders, recentLimit),
		RecentInvoices:  head(invoices, recentLimit),
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderCompleted:
			d.CompletedOrders++
		case models.OrderPending:
			d.PendingOrders++
		case models.OrderInProgress:
			d.InProgressOrders++
		}
	}
	for _, inv := range invoices {
		d.TotalRevenue += inv.TotalAmount
		switch inv.Status {
		case models.InvoicePaid:
			d.PaidInvoices++
		case models.InvoiceDraft, models.InvoiceSent:
			d.PendingInvoices++
		}
	}
	return d
}

// BuildMechanicDashboard takes all orders plus the mechanic's invoices; only
// orders the mechanic has invoiced count toward the totals.
func BuildMechanicDashboard(orders []models.Order, invoices []models.Invoice) MechanicDashboard {
	invoiced := make(map[int64]bool, len(invoices))
	d := MechanicDashboard{
		RecentInvoices: head(invoices, recentLimit),
	}
	for _, inv := range invoices {
		invoiced[inv.OrderID] = true
		d.TotalRevenue += inv.TotalAmount
		if inv.Status == models.InvoicePaid {
			d.PaidInvoices++
		}
	}
	var mine []models.Order
	for _, o := range orders {
		if !invoiced[o.ID] {
			continue
		}
		mine = append(mine, o)
		d.TotalOrders++
		if o.Status == models.OrderCompleted {
			d.CompletedOrders++
		}
	}
	d.AvgAssemblyTime = avgAssemblyHours(mine)
	return d
}

// OrdersPerDay groups orders by calendar date of creation, ascending.
func OrdersPerDay(orders []models.Order) []CountPoint {
	grouped := map[string]int{}
	for _, o := range orders {
		grouped[day(o.CreatedAt)]++
	}
	points := make([]CountPoint, 0, len(grouped))
	for date, n := range grouped {
		points = append(points, CountPoint{Date: date, Count: n})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// RevenuePerDay groups invoice totals by calendar date of creation, ascending.
func RevenuePerDay(invoices []models.Invoice) []RevenuePoint {
	grouped := map[string]int64{}
	for _, inv := range invoices {
		grouped[day(inv.CreatedAt)] += inv.TotalAmount
	}
	points := make([]RevenuePoint, 0, len(grouped))
	for date, cents := range grouped {
		points = append(points, RevenuePoint{Date: date, Revenue: cents})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func StatusDistribution(orders []models.Order) Distribution {
	var d Distribution
	for _, o := range orders {
		switch o.Status {
		case models.OrderPending:
			d.Pending++
		case models.OrderInProgress:
			d.InProgress++
		case models.OrderCompleted:
			d.Completed++
		}
	}
	return d
}

// avgAssemblyHours averages completedAt-createdAt over orders with both
// timestamps, rounded to one decimal.
func avgAssemblyHours(orders []models.Order) float64 {
	var sum float64
	var n int
	for _, o := range orders {
		if o.CompletedAt == nil {
			continue
		}
		sum += o.CompletedAt.Sub(o.CreatedAt).Hours()
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

func day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func head[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
