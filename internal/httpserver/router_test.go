package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"velodesk/internal/auth"
	"velodesk/internal/models"
	"velodesk/internal/service"
	"velodesk/internal/store"
)

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	st := store.New(db)
	svc := service.New(st, zap.NewNop().Sugar(), service.NotificationHook(st))
	router := NewRouter(Deps{
		DB:      db,
		Store:   st,
		Service: svc,
		Logger:  zap.NewNop().Sugar(),
	})
	return router, st
}

func seedAccount(t *testing.T, st *store.Store, role models.Role, email, password, branch string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test " + string(role),
		Role:         role,
		BranchName:   branch,
		IsActive:     true,
	}
	require.NoError(t, st.CreateUser(t.Context(), u))
	return u
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestPublicEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/bike-types", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFlow(t *testing.T) {
	router, st := newTestRouter(t)
	seedAccount(t, st, models.RoleManager, "mgr@velodesk.test", "secret", "Branch A")

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email": "mgr@velodesk.test", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, router, "mgr@velodesk.test", "secret")

	rec = doJSON(t, router, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "mgr@velodesk.test", me.Email)
	assert.NotContains(t, rec.Body.String(), "password_hash")

	// logout revokes the session behind the token
	rec = doJSON(t, router, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	router, st := newTestRouter(t)
	seedAccount(t, st, models.RoleManager, "mgr@velodesk.test", "secret", "Branch A")
	seedAccount(t, st, models.RoleMechanic, "mech@velodesk.test", "secret", "Workshop")

	mgrToken := login(t, router, "mgr@velodesk.test", "secret")
	mechToken := login(t, router, "mech@velodesk.test", "secret")

	rec := doJSON(t, router, http.MethodPost, "/v1/orders", mgrToken, service.CreateOrderInput{
		Bikes: []service.BikeLineInput{{BikeTypeID: 1, Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		OrderNumber string `json:"orderNumber"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, created.OrderNumber)

	// empty order is a 400
	rec = doJSON(t, router, http.MethodPost, "/v1/orders", mgrToken, service.CreateOrderInput{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/orders", mechToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	orderID := orders[0].ID

	// managers cannot drive assembly status
	rec = doJSON(t, router, http.MethodPatch, "/v1/orders/1/status", mgrToken, map[string]string{"status": "in_progress"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/v1/orders/1/status", mechToken, map[string]string{"status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.OrderInProgress, updated.Status)

	rec = doJSON(t, router, http.MethodGet, "/v1/orders/999", mechToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// scan progress over HTTP
	rec = doJSON(t, router, http.MethodGet, "/v1/orders/1/items", mechToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.OrderItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, orderID, items[0].OrderID)

	rec = doJSON(t, router, http.MethodPost, "/v1/orders/1/items/1/scans", mechToken, map[string]string{"barcode": "A1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(t, router, http.MethodPost, "/v1/orders/1/items/1/scans", mechToken, map[string]string{"barcode": "A1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/v1/orders/1/items/1/scans/0", mechToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCSVExportOverHTTP(t *testing.T) {
	router, st := newTestRouter(t)
	seedAccount(t, st, models.RoleManager, "mgr@velodesk.test", "secret", "Branch A")
	token := login(t, router, "mgr@velodesk.test", "secret")

	rec := doJSON(t, router, http.MethodGet, "/v1/export/orders.csv", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders.csv")
	assert.Contains(t, rec.Body.String(), "Order Number,Date,Branch,Status,Bikes")
}
