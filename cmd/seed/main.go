// Command seed bootstraps a fresh store with the admin account and,
// optionally, a set of sample reports for demo environments.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/P0n40/Shiftdailyreportapp/internal/config"
	"github.com/P0n40/Shiftdailyreportapp/internal/kv"
	"github.com/P0n40/Shiftdailyreportapp/internal/logger"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	withSamples := flag.Bool("samples", false, "also create sample reports")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	if cfg.Storage.Driver != "mysql" {
		log.Fatal("seed requires storage.driver=mysql; the memory driver does not persist")
	}
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	store, err := kv.NewMySQL(db)
	if err != nil {
		log.Fatal("kv init failed: ", err)
	}

	ctx := context.Background()

	// Step 1: admin account
	if cfg.Auth.AdminPassword == "" {
		log.Fatal("auth.admin_password must be set to seed the admin account")
	}
	authSvc := service.NewAuthService(store)
	err = authSvc.EnsureAccount(ctx, cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.AdminName, "admin")
	if err != nil {
		log.Fatal("admin seed failed: ", err)
	}
	logger.Info("admin account ready", "username", cfg.Auth.AdminUser)

	// Step 2: sample reports
	if *withSamples {
		reportSvc := service.NewReportService(store)
		for _, draft := range sampleReports() {
			r, err := reportSvc.Create(ctx, draft)
			if err != nil {
				log.Fatal("sample report failed: ", err)
			}
			logger.Info("sample report created", "id", r.ID, "date", r.Date)
		}
	}

	logger.Info("=== all done ===")
}
