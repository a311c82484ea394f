package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
	"github.com/huiyuan-aiad/CountdownVibes/internal/repository"
)

// CategoryService is the category registry: the fixed predefined set
// plus the owner's custom categories, with guards on deletion.
type CategoryService struct {
	categories  *repository.CategoryRepository
	countdowns  *repository.CountdownRepository
	requireAuth bool
	log         *zap.SugaredLogger
}

func NewCategoryService(categories *repository.CategoryRepository, countdowns *repository.CountdownRepository, requireAuth bool, log *zap.SugaredLogger) *CategoryService {
	return &CategoryService{categories: categories, countdowns: countdowns, requireAuth: requireAuth, log: log}
}

// Add registers a custom category. Names collide case-sensitively with
// both predefined and existing custom categories.
func (s *CategoryService) Add(ctx context.Context, ownerID, name, color string) (*model.Category, error) {
	owner, err := resolveOwner(ownerID, s.requireAuth)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if model.IsPredefined(name) {
		return nil, ErrDuplicateCategory
	}

	_, err = s.categories.FindByName(ctx, owner, name)
	switch {
	case err == nil:
		return nil, ErrDuplicateCategory
	case errors.Is(err, gorm.ErrRecordNotFound):
		// free to create
	default:
		return nil, err
	}

	if color == "" {
		color = model.DefaultCategoryColor
	}
	category := model.Category{OwnerID: owner, Name: name, Color: color}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a custom category. Predefined categories and
// categories referenced by any countdown are protected.
func (s *CategoryService) Delete(ctx context.Context, ownerID, name string) error {
	owner, err := resolveOwner(ownerID, s.requireAuth)
	if err != nil {
		return err
	}
	if model.IsPredefined(name) {
		return ErrPredefinedCategory
	}

	inUse, err := s.countdowns.CountByCategory(ctx, owner, name)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}

	removed, err := s.categories.DeleteByName(ctx, owner, name)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// List returns predefined categories, the owner's custom categories and
// any ad hoc names found only on countdowns (self-healing for records
// created with category strings the registry never saw).
func (s *CategoryService) List(ctx context.Context, ownerID string) ([]model.Category, error) {
	owner, err := resolveOwner(ownerID, s.requireAuth)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(model.PredefinedCategories))
	result := make([]model.Category, 0, len(model.PredefinedCategories))
	for _, c := range model.PredefinedCategories {
		c.OwnerID = owner
		known[c.Name] = true
		result = append(result, c)
	}

	custom, err := s.categories.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	for _, c := range custom {
		if !known[c.Name] {
			known[c.Name] = true
			result = append(result, c)
		}
	}

	derived, err := s.countdowns.DistinctCategories(ctx, owner)
	if err != nil {
		return nil, err
	}
	sort.Slice(derived, func(i, j int) bool { return derived[i].Name < derived[j].Name })
	for _, c := range derived {
		if !known[c.Name] {
			known[c.Name] = true
			result = append(result, c)
		}
	}

	return result, nil
}

// ResolveColor maps a category name to its color. Lookup order:
// predefined set, custom registry, event-segment table, default. It
// never fails; storage errors are logged and the default returned.
func (s *CategoryService) ResolveColor(ctx context.Context, ownerID, name string) string {
	if color, ok := model.PredefinedColor(name); ok {
		return color
	}

	owner, err := resolveOwner(ownerID, s.requireAuth)
	if err == nil {
		category, ferr := s.categories.FindByName(ctx, owner, name)
		switch {
		case ferr == nil:
			return category.Color
		case errors.Is(ferr, gorm.ErrRecordNotFound):
			// fall through
		default:
			if s.log != nil {
				s.log.Warnw("resolve category color", "category", name, "error", ferr)
			}
		}
	}

	if color, ok := model.EventCategoryColors[name]; ok {
		return color
	}
	return model.DefaultCategoryColor
}
