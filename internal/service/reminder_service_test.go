package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
)

type capturingNotifier struct {
	titles []string
	bodies []string
}

func (n *capturingNotifier) Notify(_ context.Context, title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return nil
}

func TestReminderFiresOnExactDayMatch(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCountdownRepository(db)
	countdowns := NewCountdownService(repo, nil, false)
	notifier := &capturingNotifier{}
	reminders := NewReminderService(repo, notifier, zap.NewNop().Sugar())

	ctx := context.Background()
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := countdowns.Create(ctx, "", CountdownInput{
		Title:        "Launch",
		Date:         now.Add(3*24*time.Hour + time.Minute),
		Reminder:     true,
		ReminderDays: 3,
	})
	require.NoError(t, err)

	fired, err := reminders.CheckDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "Launch", notifier.titles[0])
	assert.Equal(t, "3 days left", notifier.bodies[0])

	// One day later only 2 days remain; nothing fires.
	fired, err = reminders.CheckDue(ctx, now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Len(t, notifier.titles, 1)
}

func TestReminderSkipsDisabledAndZeroThreshold(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCountdownRepository(db)
	countdowns := NewCountdownService(repo, nil, false)
	notifier := &capturingNotifier{}
	reminders := NewReminderService(repo, notifier, zap.NewNop().Sugar())

	ctx := context.Background()
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := countdowns.Create(ctx, "", CountdownInput{
		Title: "No reminder", Date: now.Add(48*time.Hour + time.Minute),
	})
	require.NoError(t, err)

	_, err = countdowns.Create(ctx, "", CountdownInput{
		Title: "Zero threshold", Date: now.Add(time.Hour), Reminder: true, ReminderDays: 0,
	})
	require.NoError(t, err)

	fired, err := reminders.CheckDue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, fired)
	assert.Empty(t, notifier.titles)
}

func TestReminderSingularBody(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCountdownRepository(db)
	countdowns := NewCountdownService(repo, nil, false)
	notifier := &capturingNotifier{}
	reminders := NewReminderService(repo, notifier, zap.NewNop().Sugar())

	ctx := context.Background()
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := countdowns.Create(ctx, "", CountdownInput{
		Title: "Tomorrow", Date: now.Add(24*time.Hour + time.Minute), Reminder: true, ReminderDays: 1,
	})
	require.NoError(t, err)

	fired, err := reminders.CheckDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	require.Len(t, notifier.bodies, 1)
	assert.Equal(t, "1 day left", notifier.bodies[0])
}
