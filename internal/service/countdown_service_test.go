package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func newServices(t *testing.T, requireAuth bool) (*CountdownService, *CategoryService) {
	t.Helper()
	db := newTestDB(t)
	countdownRepo := repository.NewCountdownRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	categories := NewCategoryService(categoryRepo, countdownRepo, requireAuth, zap.NewNop().Sugar())
	countdowns := NewCountdownService(countdownRepo, categories.ResolveColor, requireAuth)
	return countdowns, categories
}

func TestCreateAndGetCountdown(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()

	created, err := countdowns.Create(ctx, "", CountdownInput{
		Title:    "Launch",
		Date:     time.Now().AddDate(0, 1, 0),
		Category: "Deadlines",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// Color denormalized from the predefined category.
	assert.Equal(t, "#ef4444", created.Color)

	got, err := countdowns.Get(ctx, "", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Title)
}

func TestCreateCountdownValidation(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()

	_, err := countdowns.Create(ctx, "", CountdownInput{Date: time.Now()})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = countdowns.Create(ctx, "", CountdownInput{Title: "No date"})
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestCreateCountdownRequiresOwnerWhenAuthEnabled(t *testing.T) {
	countdowns, _ := newServices(t, true)
	ctx := context.Background()

	_, err := countdowns.Create(ctx, "", CountdownInput{Title: "X", Date: time.Now()})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = countdowns.Create(ctx, "user-1", CountdownInput{Title: "X", Date: time.Now()})
	assert.NoError(t, err)
}

func TestUpdateCountdownPartialMerge(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()

	created, err := countdowns.Create(ctx, "", CountdownInput{
		Title: "Trip", Date: time.Now().AddDate(0, 2, 0), Notes: "pack bags",
	})
	require.NoError(t, err)

	newTitle := "Road Trip"
	reminder := true
	days := 3
	updated, err := countdowns.Update(ctx, "", created.ID, CountdownUpdate{
		Title:        &newTitle,
		Reminder:     &reminder,
		ReminderDays: &days,
	})
	require.NoError(t, err)

	assert.Equal(t, "Road Trip", updated.Title)
	assert.Equal(t, "pack bags", updated.Notes)
	assert.True(t, updated.Reminder)
	assert.Equal(t, 3, updated.ReminderDays)

	_, err = countdowns.Update(ctx, "", "missing-id", CountdownUpdate{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCountdown(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()

	created, err := countdowns.Create(ctx, "", CountdownInput{Title: "Gone", Date: time.Now()})
	require.NoError(t, err)

	require.NoError(t, countdowns.Delete(ctx, "", created.ID))
	assert.ErrorIs(t, countdowns.Delete(ctx, "", created.ID), ErrNotFound)

	_, err = countdowns.Get(ctx, "", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCountdownsFilter(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	seed := []CountdownInput{
		{Title: "Jazz Night", Date: base.AddDate(0, 0, 3), Category: "Music"},
		{Title: "Rock Show", Date: base.AddDate(0, 0, 1), Category: "Music", Notes: "smooth jazz opener"},
		{Title: "Jazz Brunch", Date: base.AddDate(0, 0, 2), Category: "Food"},
		{Title: "Final Exam", Date: base.AddDate(0, 0, 4), Category: "Deadlines"},
	}
	for _, input := range seed {
		_, err := countdowns.Create(ctx, "", input)
		require.NoError(t, err)
	}

	// Category AND case-insensitive search across title and notes.
	got, err := countdowns.List(ctx, "", repository.CountdownFilter{Category: "Music", Search: "JAZZ"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by date ascending.
	assert.Equal(t, "Rock Show", got[0].Title)
	assert.Equal(t, "Jazz Night", got[1].Title)

	all, err := countdowns.List(ctx, "", repository.CountdownFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListScopedToOwner(t *testing.T) {
	countdowns, _ := newServices(t, true)
	ctx := context.Background()

	_, err := countdowns.Create(ctx, "alice", CountdownInput{Title: "A", Date: time.Now()})
	require.NoError(t, err)
	_, err = countdowns.Create(ctx, "bob", CountdownInput{Title: "B", Date: time.Now()})
	require.NoError(t, err)

	got, err := countdowns.List(ctx, "alice", repository.CountdownFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestCreateKeepsExplicitColor(t *testing.T) {
	countdowns, _ := newServices(t, false)
	ctx := context.Background()

	created, err := countdowns.Create(ctx, "", CountdownInput{
		Title: "Custom", Date: time.Now(), Category: "Deadlines", Color: "#000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "#000000", created.Color)

	// Unknown category falls back to the default color.
	created, err = countdowns.Create(ctx, "", CountdownInput{
		Title: "Ad hoc", Date: time.Now(), Category: "Nonsense",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategoryColor, created.Color)
}
