package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"velodesk/internal/auth"
	"velodesk/internal/models"
	"velodesk/internal/service"
	"velodesk/internal/store"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(strings.ToLower(req.Email))
		u, err := st.UserByEmail(r.Context(), email)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		if u == nil || !u.IsActive {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		jti := uuid.NewString()
		if err := st.CreateSession(r.Context(), &models.Session{
			JTI:       jti,
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(auth.TTL()),
		}); err != nil {
			respondError(w, lg, err)
			return
		}
		tok, err := auth.Sign(u.ID, u.Role, jti)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}
		if err := st.TouchLastSignedIn(r.Context(), u.ID); err != nil {
			lg.Warnw("last sign-in not recorded", "user", u.ID, "err", err)
		}
		respondJSON(w, map[string]any{"token": tok, "user": u})
	}
}

func Logout(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := auth.FromContext(r.Context())
		if err := st.RevokeSession(r.Context(), c.JWTID); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}

func Me(svc *service.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Me(r.Context(), callerFrom(r))
		if err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, u)
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func ChangePassword(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			http.Error(w, "current and new password required", http.StatusBadRequest)
			return
		}
		sub := auth.Subject(r.Context())
		u, err := st.UserByID(r.Context(), sub)
		if err != nil {
			respondError(w, lg, err)
			return
		}
		if u == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.CurrentPassword); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}
		u.PasswordHash = hash
		if err := st.SaveUser(r.Context(), u); err != nil {
			respondError(w, lg, err)
			return
		}
		respondJSON(w, map[string]any{"success": true})
	}
}
