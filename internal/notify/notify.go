// Package notify delivers reminder notifications.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier raises a user-facing notification. Implementations must not
// treat delivery failure as fatal; the caller logs and moves on.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// LogNotifier writes notifications to the log. It stands in when no
// delivery channel is configured.
type LogNotifier struct {
	log *zap.SugaredLogger
}

func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, title, body string) error {
	n.log.Infow("reminder", "title", title, "body", body)
	return nil
}
