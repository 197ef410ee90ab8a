package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/service"
)

func ListBikeTypes(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bts, err := svc.BikeTypes(r.Context())
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, bts)
	}
}

func GetBikeType(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		bt, err := svc.BikeTypeByID(r.Context(), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, bt)
	}
}

func CreateBikeType(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CreateBikeTypeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		bt, err := svc.CreateBikeType(r.Context(), callerFrom(r), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		respondJSON(w, bt)
	}
}

func UpdateBikeType(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var in service.UpdateBikeTypeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		bt, err := svc.UpdateBikeType(r.Context(), callerFrom(r), id, in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, bt)
	}
}

func DeleteBikeType(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteBikeType(r.Context(), callerFrom(r), id); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}
