package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/P0n40/Shiftdailyreportapp/internal/config"
	"github.com/P0n40/Shiftdailyreportapp/internal/handler"
	"github.com/P0n40/Shiftdailyreportapp/internal/kv"
	"github.com/P0n40/Shiftdailyreportapp/internal/logger"
	"github.com/P0n40/Shiftdailyreportapp/internal/middleware"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("storage init failed", "driver", cfg.Storage.Driver, "err", err)
		os.Exit(1)
	}

	reportSvc := service.NewReportService(store)
	authSvc := service.NewAuthService(store)

	if cfg.Auth.AdminPassword != "" {
		err := authSvc.EnsureAccount(context.Background(),
			cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.AdminName, "admin")
		if err != nil {
			slog.Error("admin bootstrap failed", "err", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("no admin password configured, login will fail until an account is seeded")
	}

	secret := []byte(cfg.Auth.JWTSecret)
	reportH := handler.NewReportHandler(reportSvc)
	authH := handler.NewAuthHandler(authSvc, secret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-New-Token"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth(secret))
	api.GET("/reports", reportH.List)
	api.GET("/reports/:id", reportH.Get)
	api.POST("/reports", reportH.Create)
	api.PUT("/reports/:id", reportH.Update)
	api.DELETE("/reports/:id", reportH.Delete)
	api.GET("/statistics", reportH.Statistics)

	slog.Info("server starting", "addr", cfg.Addr(), "storage", cfg.Storage.Driver)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}

func openStore(cfg *config.Config) (kv.Store, error) {
	if cfg.Storage.Driver != "mysql" {
		return kv.NewMemory(), nil
	}
	db, err := cfg.OpenGormDB()
	if err != nil {
		return nil, err
	}
	return kv.NewMySQL(db)
}
