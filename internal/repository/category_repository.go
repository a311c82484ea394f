package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

// CategoryRepository manages the custom (user-created) categories.
// Predefined categories never touch storage.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, ownerID, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteByName removes a custom category and reports whether a row was
// removed.
func (r *CategoryRepository) DeleteByName(ctx context.Context, ownerID, name string) (bool, error) {
	res := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).Delete(&model.Category{})
	if res.Error != nil {
		return false, fmt.Errorf("delete category: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
