package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"velodesk/internal/auth"
	"velodesk/internal/config"
	"velodesk/internal/httpserver"
	"velodesk/internal/logger"
	"velodesk/internal/models"
	"velodesk/internal/push"
	"velodesk/internal/service"
	"velodesk/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	if cfg.DatabaseURL == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}

	st := store.New(db)
	seedDefaultAdmin(context.Background(), st, cfg, lg)

	hooks := []service.Hook{service.NotificationHook(st)}
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		sender := push.NewSender(st, lg, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject)
		hooks = append(hooks, sender.Hook())
	} else {
		lg.Infow("push delivery disabled, no VAPID keys")
	}
	svc := service.New(st, lg, hooks...)

	router := httpserver.NewRouter(httpserver.Deps{
		DB:             db,
		Store:          st,
		Service:        svc,
		Logger:         lg,
		VAPIDPublicKey: cfg.VAPIDPublicKey,
	})

	lg.Infow("listening", "address", cfg.RunAddress)
	if err := http.ListenAndServe(cfg.RunAddress, router); err != nil {
		log.Fatal(err)
	}
}

func seedDefaultAdmin(ctx context.Context, st *store.Store, cfg *config.Config, lg *zap.SugaredLogger) {
	email := strings.ToLower(cfg.AdminEmail)
	existing, err := st.UserByEmail(ctx, email)
	if err != nil {
		lg.Warnw("admin seed skipped", "error", err)
		return
	}
	if existing != nil {
		return
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "changeme"
		lg.Warnw("ADMIN_PASSWORD is empty, seeding default admin with placeholder password")
	}
	hash, _ := auth.HashPassword(password)
	u := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := st.CreateUser(ctx, &u); err != nil {
		lg.Warnw("admin seed failed", "error", err)
		return
	}
	lg.Infow("seeded default admin", "email", email)
}
