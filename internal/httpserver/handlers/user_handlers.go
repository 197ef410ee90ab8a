package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"velodesk/internal/service"
)

func ListManagers(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		us, err := svc.Managers(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, us)
	}
}

// GetMechanic exposes the workshop's sole mechanic so managers can show
// who assembles their orders. No auth required.
func GetMechanic(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Mechanic(r.Context())
		if err != nil {
			respondError(w, lg, err)
			return
		}
		if u == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, u)
	}
}

func CreateUser(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CreateAccountInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		u, err := svc.CreateAccount(r.Context(), callerFrom(r), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		respondJSON(w, u)
	}
}

func UpdateUser(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if uuid.Validate(id) != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var in service.UpdateAccountInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		u, err := svc.UpdateAccount(r.Context(), callerFrom(r), id, in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, u)
	}
}
