package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

// CountdownFilter narrows a listing to an exact category and/or a
// case-insensitive substring of title or notes.
type CountdownFilter struct {
	Category string
	Search   string
}

// CountdownRepository handles CRUD for countdowns.
type CountdownRepository struct {
	db *gorm.DB
}

func NewCountdownRepository(db *gorm.DB) *CountdownRepository {
	return &CountdownRepository{db: db}
}

func (r *CountdownRepository) Create(ctx context.Context, countdown *model.Countdown) error {
	if err := r.db.WithContext(ctx).Create(countdown).Error; err != nil {
		return fmt.Errorf("create countdown: %w", err)
	}
	return nil
}

func (r *CountdownRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Countdown, error) {
	var countdown model.Countdown
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).First(&countdown).Error; err != nil {
		return nil, err
	}
	return &countdown, nil
}

func (r *CountdownRepository) Save(ctx context.Context, countdown *model.Countdown) error {
	if err := r.db.WithContext(ctx).Save(countdown).Error; err != nil {
		return fmt.Errorf("save countdown: %w", err)
	}
	return nil
}

// Delete removes a countdown and reports whether a row was removed.
func (r *CountdownRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).Delete(&model.Countdown{})
	if res.Error != nil {
		return false, fmt.Errorf("delete countdown: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// List returns the owner's countdowns matching the filter, ordered by
// target date ascending.
func (r *CountdownRepository) List(ctx context.Context, ownerID string, filter CountdownFilter) ([]model.Countdown, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(notes) LIKE ?", needle, needle)
	}

	var countdowns []model.Countdown
	if err := q.Order("date ASC").Find(&countdowns).Error; err != nil {
		return nil, err
	}
	return countdowns, nil
}

// ListReminding returns every countdown, across all owners, with an
// enabled reminder and a positive day threshold.
func (r *CountdownRepository) ListReminding(ctx context.Context) ([]model.Countdown, error) {
	var countdowns []model.Countdown
	if err := r.db.WithContext(ctx).
		Where("reminder = ? AND reminder_days > 0", true).
		Find(&countdowns).Error; err != nil {
		return nil, err
	}
	return countdowns, nil
}

// CountByCategory counts the owner's countdowns referencing category name.
func (r *CountdownRepository) CountByCategory(ctx context.Context, ownerID, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Countdown{}).
		Where("owner_id = ? AND category = ?", ownerID, name).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count by category: %w", err)
	}
	return count, nil
}

// DistinctCategories lists category names appearing on the owner's
// countdowns, each with the color of the first countdown carrying it.
func (r *CountdownRepository) DistinctCategories(ctx context.Context, ownerID string) ([]model.Category, error) {
	var rows []struct {
		Category string
		Color    string
	}
	if err := r.db.WithContext(ctx).Model(&model.Countdown{}).
		Select("category, MIN(color) AS color").
		Where("owner_id = ? AND category <> ''", ownerID).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		color := row.Color
		if color == "" {
			color = model.DefaultCategoryColor
		}
		categories = append(categories, model.Category{OwnerID: ownerID, Name: row.Category, Color: color})
	}
	return categories, nil
}
