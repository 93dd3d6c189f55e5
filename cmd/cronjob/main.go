package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"masjidhub-backend/internal/config"
	"masjidhub-backend/internal/db"
	"masjidhub-backend/internal/jobs"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository/postgres"
	"masjidhub-backend/internal/scheduler"
	"masjidhub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	runOnce := flag.String("run-once", "", "run one job set immediately and exit: nightly or monthly")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Initialize("info", "text")
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	log := logger.WithService("cronjob")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	store := postgres.NewStore(database)
	emailSvc := service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	runner := jobs.NewJobRunner(
		store.AdminRepository,
		store.SessionRepository,
		store.SocietyRepository,
		store.ResidentRepository,
		store.ContributionRepository,
		emailSvc,
		cfg.Email.OperatorEmail,
	)

	switch *runOnce {
	case "nightly":
		runner.RunAllNightlyJobs()
		return
	case "monthly":
		runner.RunAllMonthlyJobs()
		return
	case "":
	default:
		log.Error("unknown run-once job set", "value", *runOnce)
		os.Exit(1)
	}

	sched := scheduler.New(runner, cfg.Scheduler)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	log.Info("cronjob worker running")
	<-ctx.Done()
	sched.Stop()
}
