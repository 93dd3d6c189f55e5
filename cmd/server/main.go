package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masjidhub-backend/internal/api"
	"masjidhub-backend/internal/config"
	"masjidhub-backend/internal/db"
	"masjidhub-backend/internal/jobs"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository/postgres"
	"masjidhub-backend/internal/scheduler"
	"masjidhub-backend/internal/security"
	"masjidhub-backend/internal/seed"
	"masjidhub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	runMigrations := flag.Bool("migrate", false, "apply database migrations before starting")
	migrationsURL := flag.String("migrations", "", "migrations source URL, defaults to file://db/migrations")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Initialize("info", "text")
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	log := logger.WithService("server")

	if *runMigrations {
		if err := db.MigrateUp(cfg, *migrationsURL); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("database migrations applied")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	store := postgres.NewStore(database)
	tokens := security.NewTokenManager(cfg.Session.Secret)
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	emailSvc := service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	adminSvc := service.NewAdminService(store.AdminRepository, emailSvc, cfg.Email.OperatorEmail)
	authSvc := service.NewAuthService(store.AdminRepository, store.SessionRepository, tokens, sessionTTL)
	communitySvc := service.NewCommunityService(store.SocietyRepository, store.ResidentRepository, emailSvc)
	financeSvc := service.NewFinanceService(store.ContributionRepository, store.ExpenseRepository, store.DonationRepository)
	forumSvc := service.NewForumService(store.DiscussionRepository, store.ProposalRepository, store.ResidentRepository)
	enrollmentSvc := service.NewEnrollmentService(store.EnrollmentRepository, emailSvc)

	if err := seed.BootstrapGlobalAdmin(ctx, store.AdminRepository, cfg.Bootstrap); err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	runner := jobs.NewJobRunner(
		store.AdminRepository,
		store.SessionRepository,
		store.SocietyRepository,
		store.ResidentRepository,
		store.ContributionRepository,
		emailSvc,
		cfg.Email.OperatorEmail,
	)
	sched := scheduler.New(runner, cfg.Scheduler)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	server := api.NewServer(adminSvc, authSvc, communitySvc, financeSvc, forumSvc, enrollmentSvc, sessionTTL)
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}
}
