package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/econosfera/internal/config"
	"github.com/Dan9191/econosfera/internal/handler"
	"github.com/Dan9191/econosfera/internal/integrations/banxico"
	"github.com/Dan9191/econosfera/internal/middleware"
	"github.com/Dan9191/econosfera/internal/repository"
	"github.com/Dan9191/econosfera/internal/scheduler"
	"github.com/Dan9191/econosfera/internal/service"
	"github.com/Dan9191/econosfera/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	repo := repository.NewRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize layers
	var rates service.RateSource
	if cfg.BanxicoToken != "" {
		rates = banxico.NewClient(cfg, logger)
	} else {
		logger.Warn("BANXICO_TOKEN not set, CETES rate lookups are disabled")
	}
	mailer := email.NewSender(cfg, logger)

	svc, err := service.NewService(repo, rates, mailer, logger, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize service: %v", err)
	}
	h := handler.NewHandler(svc, logger)

	var sched *scheduler.Scheduler
	if rates != nil {
		sched, err = scheduler.NewScheduler(cfg.RateRefresh, svc, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize scheduler: %v", err)
		}
		sched.Start()
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Recover(logger), middleware.Logging(logger))
	h.Register(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if sched != nil {
		sched.Stop(ctx)
	}
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
