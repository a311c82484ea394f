package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
)

// CountdownInput carries the data required to create a countdown.
type CountdownInput struct {
	Title        string
	Date         time.Time
	Category     string
	Color        string
	Notes        string
	Reminder     bool
	ReminderDays int
	ImageURL     string
}

// CountdownUpdate is a partial update; nil fields are left untouched.
type CountdownUpdate struct {
	Title        *string
	Date         *time.Time
	Category     *string
	Color        *string
	Notes        *string
	Reminder     *bool
	ReminderDays *int
	ImageURL     *string
}

// ColorResolver maps a category name to a display color.
type ColorResolver func(ctx context.Context, ownerID, name string) string

// CountdownService wraps countdown business logic.
type CountdownService struct {
	repo         *repository.CountdownRepository
	resolveColor ColorResolver
	requireAuth  bool
}

func NewCountdownService(repo *repository.CountdownRepository, resolveColor ColorResolver, requireAuth bool) *CountdownService {
	return &CountdownService{repo: repo, resolveColor: resolveColor, requireAuth: requireAuth}
}

func (s *CountdownService) resolveOwner(ownerID string) (string, error) {
	return resolveOwner(ownerID, s.requireAuth)
}

func (s *CountdownService) Create(ctx context.Context, ownerID string, input CountdownInput) (*model.Countdown, error) {
	owner, err := s.resolveOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Date.IsZero() {
		return nil, ErrDateRequired
	}

	color := input.Color
	if color == "" && s.resolveColor != nil {
		color = s.resolveColor(ctx, owner, input.Category)
	}

	countdown := model.Countdown{
		ID:           uuid.NewString(),
		OwnerID:      owner,
		Title:        input.Title,
		Date:         input.Date,
		Category:     input.Category,
		Color:        color,
		Notes:        input.Notes,
		Reminder:     input.Reminder,
		ReminderDays: input.ReminderDays,
		ImageURL:     input.ImageURL,
	}

	if err := s.repo.Create(ctx, &countdown); err != nil {
		return nil, err
	}
	return &countdown, nil
}

func (s *CountdownService) Get(ctx context.Context, ownerID, id string) (*model.Countdown, error) {
	owner, err := s.resolveOwner(ownerID)
	if err != nil {
		return nil, err
	}

	countdown, err := s.repo.FindByID(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return countdown, nil
}

// Update merges the provided fields into the stored record. The update
// timestamp is stamped by gorm on save.
func (s *CountdownService) Update(ctx context.Context, ownerID, id string, update CountdownUpdate) (*model.Countdown, error) {
	owner, err := s.resolveOwner(ownerID)
	if err != nil {
		return nil, err
	}

	countdown, err := s.repo.FindByID(ctx, owner, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if *update.Title == "" {
			return nil, ErrTitleRequired
		}
		countdown.Title = *update.Title
	}
	if update.Date != nil {
		countdown.Date = *update.Date
	}
	if update.Category != nil {
		countdown.Category = *update.Category
		// Re-derive the denormalized color unless the caller also sets one.
		if update.Color == nil && s.resolveColor != nil {
			countdown.Color = s.resolveColor(ctx, owner, countdown.Category)
		}
	}
	if update.Color != nil {
		countdown.Color = *update.Color
	}
	if update.Notes != nil {
		countdown.Notes = *update.Notes
	}
	if update.Reminder != nil {
		countdown.Reminder = *update.Reminder
	}
	if update.ReminderDays != nil {
		countdown.ReminderDays = *update.ReminderDays
	}
	if update.ImageURL != nil {
		countdown.ImageURL = *update.ImageURL
	}

	if err := s.repo.Save(ctx, countdown); err != nil {
		return nil, err
	}
	return countdown, nil
}

func (s *CountdownService) Delete(ctx context.Context, ownerID, id string) error {
	owner, err := s.resolveOwner(ownerID)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, owner, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// List returns countdowns matching the filter, ordered by date ascending.
func (s *CountdownService) List(ctx context.Context, ownerID string, filter repository.CountdownFilter) ([]model.Countdown, error) {
	owner, err := s.resolveOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, owner, filter)
}
