package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/models"
	"velodesk/internal/service"
)

func ListInvoices(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invs, err := svc.Invoices(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, invs)
	}
}

func GetInvoice(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		inv, err := svc.InvoiceByID(r.Context(), callerFrom(r), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, inv)
	}
}

func CreateInvoice(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CreateInvoiceInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		number, err := svc.CreateInvoice(r.Context(), callerFrom(r), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		respondJSON(w, map[string]any{"invoiceNumber": number})
	}
}

type invoiceStatusReq struct {
	Status models.InvoiceStatus `json:"status"`
}

func UpdateInvoiceStatus(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req invoiceStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		inv, err := svc.UpdateInvoiceStatus(r.Context(), callerFrom(r), id, req.Status)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, inv)
	}
}
