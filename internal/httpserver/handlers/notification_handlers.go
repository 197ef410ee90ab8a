package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/service"
)

func ListNotifications(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, err := svc.Notifications(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, ns)
	}
}

func ListUnreadNotifications(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, err := svc.UnreadNotifications(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, ns)
	}
}

func UnreadNotificationCount(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.UnreadCount(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"count": n})
	}
}

func MarkNotificationRead(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.MarkNotificationRead(r.Context(), callerFrom(r), id); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}
