package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"velodesk/internal/auth"
	"velodesk/internal/httpserver/handlers"
	"velodesk/internal/service"
	"velodesk/internal/store"
)

type Deps struct {
	DB             *gorm.DB
	Store          *store.Store
	Service        *service.Service
	Logger         *zap.SugaredLogger
	VAPIDPublicKey string
}

func NewRouter(d Deps) http.Handler {
	lg := d.Logger
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Post("/v1/auth/login", handlers.Login(d.Store, lg))
	r.Get("/v1/bike-types", handlers.ListBikeTypes(d.Service, lg))
	r.Get("/v1/bike-types/{id}", handlers.GetBikeType(d.Service, lg))
	r.Get("/v1/users/mechanic", handlers.GetMechanic(d.Service, lg))
	r.Get("/v1/push/public-key", handlers.VAPIDPublicKey(d.VAPIDPublicKey))

	r.Group(func(protected chi.Router) {
		protected.Use(auth.JWTAuth(d.DB))

		protected.Get("/v1/me", handlers.Me(d.Service, lg))
		protected.Post("/v1/auth/logout", handlers.Logout(d.Store, lg))
		protected.Post("/v1/auth/password", handlers.ChangePassword(d.Store, lg))

		protected.Post("/v1/bike-types", handlers.CreateBikeType(d.Service, lg))
		protected.Patch("/v1/bike-types/{id}", handlers.UpdateBikeType(d.Service, lg))
		protected.Delete("/v1/bike-types/{id}", handlers.DeleteBikeType(d.Service, lg))

		protected.Get("/v1/orders", handlers.ListOrders(d.Service, lg))
		protected.Post("/v1/orders", handlers.CreateOrder(d.Service, lg))
		protected.Get("/v1/orders/{id}", handlers.GetOrder(d.Service, lg))
		protected.Patch("/v1/orders/{id}/status", handlers.UpdateOrderStatus(d.Service, lg))
		protected.Get("/v1/orders/{id}/items", handlers.ListOrderItems(d.Service, lg))
		protected.Post("/v1/orders/{id}/items/{itemID}/scans", handlers.AddItemScan(d.Service, lg))
		protected.Delete("/v1/orders/{id}/items/{itemID}/scans/{index}", handlers.RemoveItemScan(d.Service, lg))

		protected.Get("/v1/invoices", handlers.ListInvoices(d.Service, lg))
		protected.Post("/v1/invoices", handlers.CreateInvoice(d.Service, lg))
		protected.Get("/v1/invoices/{id}", handlers.GetInvoice(d.Service, lg))
		protected.Patch("/v1/invoices/{id}/status", handlers.UpdateInvoiceStatus(d.Service, lg))

		protected.Get("/v1/notifications", handlers.ListNotifications(d.Service, lg))
		protected.Get("/v1/notifications/unread", handlers.ListUnreadNotifications(d.Service, lg))
		protected.Get("/v1/notifications/unread/count", handlers.UnreadNotificationCount(d.Service, lg))
		protected.Post("/v1/notifications/{id}/read", handlers.MarkNotificationRead(d.Service, lg))

		protected.Post("/v1/push/subscribe", handlers.PushSubscribe(d.Service, lg))
		protected.Post("/v1/push/unsubscribe", handlers.PushUnsubscribe(d.Service, lg))

		protected.Get("/v1/analytics/manager-dashboard", handlers.ManagerDashboard(d.Service, lg))
		protected.Get("/v1/analytics/mechanic-dashboard", handlers.MechanicDashboard(d.Service, lg))
		protected.Get("/v1/analytics/orders-over-time", handlers.OrdersOverTime(d.Service, lg))
		protected.Get("/v1/analytics/revenue-over-time", handlers.RevenueOverTime(d.Service, lg))
		protected.Get("/v1/analytics/status-distribution", handlers.OrderStatusDistribution(d.Service, lg))

		protected.Get("/v1/export/invoices.csv", handlers.ExportInvoicesCSV(d.Service, lg))
		protected.Get("/v1/export/orders.csv", handlers.ExportOrdersCSV(d.Service, lg))
		protected.Get("/v1/export/analytics.pdf", handlers.ExportAnalyticsPDF(d.Service, lg))

		protected.Get("/v1/admin/users", handlers.ListManagers(d.Service, lg))
		protected.Post("/v1/admin/users", handlers.CreateUser(d.Service, lg))
		protected.Patch("/v1/admin/users/{id}", handlers.UpdateUser(d.Service, lg))

		protected.Get("/v1/logs", handlers.AuditTrail(d.Store, lg))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
