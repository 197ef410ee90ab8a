package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"velodesk/internal/service"
)

func PushSubscribe(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.SubscribeInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := svc.Subscribe(r.Context(), callerFrom(r), in); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}

type unsubscribeReq struct {
	Endpoint string `json:"endpoint"`
}

func PushUnsubscribe(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req unsubscribeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := svc.Unsubscribe(r.Context(), callerFrom(r), req.Endpoint); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}

// VAPIDPublicKey hands the browser the key it needs to subscribe.
func VAPIDPublicKey(publicKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{"publicKey": publicKey})
	}
}
