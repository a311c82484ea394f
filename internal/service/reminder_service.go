package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/huiyuan-aiad/CountdownVibes/internal/notify"
	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
	"github.com/huiyuan-aiad/CountdownVibes/internal/timeleft"
)

// ReminderService sweeps the countdown collection and fires a
// notification for every countdown whose remaining days exactly match
// its configured threshold.
//
// Fired reminders are not persisted: a restart while the condition
// still holds fires the same reminder again.
type ReminderService struct {
	countdowns *repository.CountdownRepository
	notifier   notify.Notifier
	log        *zap.SugaredLogger
}

func NewReminderService(countdowns *repository.CountdownRepository, notifier notify.Notifier, log *zap.SugaredLogger) *ReminderService {
	return &ReminderService{countdowns: countdowns, notifier: notifier, log: log}
}

// CheckDue runs one sweep and returns how many reminders fired.
// Delivery failures are logged per countdown and do not stop the sweep.
func (s *ReminderService) CheckDue(ctx context.Context, now time.Time) (int, error) {
	countdowns, err := s.countdowns.ListReminding(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminding countdowns: %w", err)
	}

	fired := 0
	for _, countdown := range countdowns {
		left := timeleft.Remaining(countdown.Date, now)
		if left.Days != countdown.ReminderDays {
			continue
		}

		body := fmt.Sprintf("%d days left", left.Days)
		if left.Days == 1 {
			body = "1 day left"
		}
		if err := s.notifier.Notify(ctx, countdown.Title, body); err != nil {
			s.log.Warnw("reminder delivery failed", "countdown", countdown.ID, "error", err)
			continue
		}
		fired++
	}
	return fired, nil
}
