package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanmay1202/macnmanage/internal/buildinfo"
	"github.com/Tanmay1202/macnmanage/internal/config"
	"github.com/Tanmay1202/macnmanage/internal/database"
	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/handlers"
	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// 2. Initialize database (detects embedded vs external automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called in the shutdown handler below

	// 3. Synchronize schema
	if err := db.AutoMigrate(
		&models.User{},
		&models.Resource{},
		&models.ProductionLog{},
	); err != nil {
		logrus.Warnf("Migration warning: %v", err)
	}

	// 4. Start the change-event hub
	hub := events.NewHub()
	go hub.Run()

	// 5. Set up HTTP router
	router := handlers.NewRouter(db, cfg, hub)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":   cfg.Port,
			"env":    cfg.Env,
			"commit": buildinfo.CommitHash,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	logrus.Infof("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	if err := db.Close(); err != nil {
		logrus.Errorf("Database close error: %v", err)
	}

	logrus.Info("Shutdown complete")
}
