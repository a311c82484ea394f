package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/huiyuan-aiad/CountdownVibes/internal/assistant"
	"github.com/huiyuan-aiad/CountdownVibes/internal/config"
	"github.com/huiyuan-aiad/CountdownVibes/internal/logging"
	"github.com/huiyuan-aiad/CountdownVibes/internal/notify"
	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
	"github.com/huiyuan-aiad/CountdownVibes/internal/server"
	"github.com/huiyuan-aiad/CountdownVibes/internal/service"
	"github.com/huiyuan-aiad/CountdownVibes/internal/ticketmaster"
)

func main() {
	configPath := flag.String("config", "countdownvibes.yaml", "path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("open database", "error", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	countdownRepo := repository.NewCountdownRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo, countdownRepo, cfg.RequireAuth, logger)
	countdownSvc := service.NewCountdownService(countdownRepo, categorySvc.ResolveColor, cfg.RequireAuth)

	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		telegram, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.Fatalw("telegram notifier", "error", err)
		}
		notifier = telegram
		logger.Info("reminders delivered via telegram")
	}
	reminderSvc := service.NewReminderService(countdownRepo, notifier, logger)

	events := ticketmaster.New(ticketmaster.Config{
		APIKey:  cfg.TicketmasterAPIKey,
		Timeout: cfg.SearchTimeout(),
	}, logger)
	if !events.Configured() {
		logger.Warn("ticketmaster api key missing, event search disabled")
	}

	var chat *assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		chat, err = assistant.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatalw("assistant", "error", err)
		}
	} else {
		logger.Warn("gemini api key missing, chat disabled")
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.ReminderTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if fired, err := reminderSvc.CheckDue(jobCtx, time.Now()); err != nil {
			logger.Errorw("reminder sweep", "error", err)
		} else if fired > 0 {
			logger.Infow("reminders fired", "count", fired)
		}
	}); err != nil {
		logger.Fatalw("schedule reminders", "error", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Startup sweep: catch thresholds already reached today.
	if _, err := reminderSvc.CheckDue(ctx, time.Now()); err != nil {
		logger.Errorw("startup reminder sweep", "error", err)
	}

	srv := server.New(countdownSvc, categorySvc, events, chat, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.Listen)
	}()
	logger.Infow("countdownvibes started", "listen", cfg.Listen)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			logger.Fatalw("server stopped", "error", err)
		}
	}
	logger.Info("shutdown complete")
}
