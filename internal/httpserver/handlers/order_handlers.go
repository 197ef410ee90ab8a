package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"velodesk/internal/models"
	"velodesk/internal/service"
)

func ListOrders(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.Orders(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, orders)
	}
}

func GetOrder(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		o, err := svc.OrderByID(r.Context(), callerFrom(r), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, o)
	}
}

func CreateOrder(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CreateOrderInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		number, err := svc.CreateOrder(r.Context(), callerFrom(r), in)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		respondJSON(w, map[string]any{"orderNumber": number})
	}
}

type orderStatusReq struct {
	Status models.OrderStatus `json:"status"`
}

func UpdateOrderStatus(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		var req orderStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		o, err := svc.UpdateOrderStatus(r.Context(), callerFrom(r), id, req.Status)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, o)
	}
}

func ListOrderItems(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		items, err := svc.OrderItems(r.Context(), callerFrom(r), id)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, items)
	}
}

type scanReq struct {
	Barcode string `json:"barcode"`
}

func AddItemScan(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		itemID, err := parseID(r, "itemID")
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}
		var req scanReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		item, err := svc.AddItemScan(r.Context(), callerFrom(r), orderID, itemID, req.Barcode)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, item)
	}
}

func RemoveItemScan(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseID(r, "id")
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		itemID, err := parseID(r, "itemID")
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "invalid index", http.StatusBadRequest)
			return
		}
		item, err := svc.RemoveItemScan(r.Context(), callerFrom(r), orderID, itemID, index)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, item)
	}
}
