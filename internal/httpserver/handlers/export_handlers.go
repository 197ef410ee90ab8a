package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"velodesk/internal/export"
	"velodesk/internal/models"
	"velodesk/internal/service"
)

func ExportInvoicesCSV(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invs, err := svc.Invoices(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
		if err := export.WriteInvoicesCSV(w, invs); err != nil {
			lg.Errorw("csv export failed", "err", err)
		}
	}
}

func ExportOrdersCSV(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.Orders(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
		if err := export.WriteOrdersCSV(w, orders); err != nil {
			lg.Errorw("csv export failed", "err", err)
		}
	}
}

// ExportAnalyticsPDF renders the caller's dashboard as a printable
// report. Managers get their branch, the mechanic the whole workshop.
func ExportAnalyticsPDF(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := callerFrom(r)
		report, err := buildReport(r, svc, caller)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="analytics.pdf"`)
		if err := export.WriteAnalyticsPDF(w, *report); err != nil {
			lg.Errorw("pdf export failed", "err", err)
		}
	}
}

func buildReport(r *http.Request, svc *service.Service, caller service.Caller) (*export.Report, error) {
	orders, err := svc.Orders(r.Context(), caller)
	if err != nil {
		return nil, err
	}
	invoices, err := svc.Invoices(r.Context(), caller)
	if err != nil {
		return nil, err
	}

	rep := export.Report{
		Title:    "Rapport d'assemblage",
		Orders:   orders,
		Invoices: invoices,
	}
	if len(orders) > 0 {
		first := orders[len(orders)-1].CreatedAt
		last := orders[0].CreatedAt
		rep.DateRange = first.UTC().Format("2006-01-02") + " - " + last.UTC().Format("2006-01-02")
	}

	switch caller.Role {
	case models.RoleMechanic:
		d, err := svc.MechanicDashboard(r.Context(), caller)
		if err != nil {
			return nil, err
		}
		rep.Metrics = []export.Metric{
			{Label: "Commandes totales", Value: strconv.Itoa(d.TotalOrders)},
			{Label: "Commandes complétées", Value: strconv.Itoa(d.CompletedOrders)},
			{Label: "Revenu total", Value: models.FormatEuros(d.TotalRevenue)},
			{Label: "Factures payées", Value: strconv.Itoa(d.PaidInvoices)},
			{Label: "Temps moyen d'assemblage (h)", Value: fmt.Sprintf("%.1f", d.AvgAssemblyTime)},
		}
	default:
		d, err := svc.ManagerDashboard(r.Context(), caller)
		if err != nil {
			return nil, err
		}
		rep.Metrics = []export.Metric{
			{Label: "Commandes totales", Value: strconv.Itoa(d.TotalOrders)},
			{Label: "Commandes complétées", Value: strconv.Itoa(d.CompletedOrders)},
			{Label: "Revenu total", Value: models.FormatEuros(d.TotalRevenue)},
			{Label: "Factures payées", Value: strconv.Itoa(d.PaidInvoices)},
			{Label: "Temps moyen d'assemblage (h)", Value: fmt.Sprintf("%.1f", d.AvgAssemblyTime)},
		}
	}
	return &rep, nil
}
