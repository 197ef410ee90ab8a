package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/service"
)

func ManagerDashboard(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.ManagerDashboard(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, d)
	}
}

func MechanicDashboard(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.MechanicDashboard(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, d)
	}
}

func OrdersOverTime(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pts, err := svc.OrdersOverTime(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, pts)
	}
}

func RevenueOverTime(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pts, err := svc.RevenueOverTime(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, pts)
	}
}

func OrderStatusDistribution(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.OrderStatusDistribution(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, d)
	}
}
