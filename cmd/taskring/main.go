package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskring/internal/config"
	"taskring/internal/notify"
	"taskring/internal/repository"
	"taskring/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	notifier := notify.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	refreshSvc := service.NewRefreshService(taskRepo)
	dispatchSvc := service.NewDispatchService(taskRepo, userRepo, notifier)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.RefreshTime, func() {
		refreshSvc.Run(context.Background(), time.Now())
	}); err != nil {
		log.Fatalf("schedule priority refresh: %v", err)
	}
	if _, err := scheduler.ScheduleDaily(cfg.DispatchTime, func() {
		dispatchSvc.Run(context.Background(), time.Now())
	}); err != nil {
		log.Fatalf("schedule reminder dispatch: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("[info] taskring started")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
