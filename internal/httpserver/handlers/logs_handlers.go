package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/auth"
	"velodesk/internal/models"
	"velodesk/internal/store"
)

// AuditTrail returns the caller's own audit entries; admins may pass
// ?all=1 to see everyone's.
func AuditTrail(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := auth.FromContext(r.Context())
		if r.URL.Query().Get("all") == "1" && c.Role == models.RoleAdmin {
			logs, err := st.AuditLogs(r.Context(), 200)
			if err != nil {
				respondError(w, lg, err)
				return
			}
			respondJSON(w, logs)
			return
		}
		logs, err := st.AuditLogsByUser(r.Context(), c.Subject, 100)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, logs)
	}
}
