package model

import "time"

// DefaultCategoryColor is used when a category name resolves to nothing.
const DefaultCategoryColor = "#4f46e5"

// Category groups countdowns under a named, colored label.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	OwnerID   string    `gorm:"not null;index:idx_owner_category_name,unique" json:"-"`
	Name      string    `gorm:"not null;index:idx_owner_category_name,unique" json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PredefinedCategories exist for every owner and can never be deleted.
var PredefinedCategories = []Category{
	{Name: "Celebrations", Color: "#10b981"},
	{Name: "Milestones", Color: "#3b82f6"},
	{Name: "Deadlines", Color: "#ef4444"},
}

// IsPredefined reports whether name matches a predefined category
// (case-sensitive, like every other name lookup in the registry).
func IsPredefined(name string) bool {
	for _, c := range PredefinedCategories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// PredefinedColor returns the color of a predefined category, if any.
func PredefinedColor(name string) (string, bool) {
	for _, c := range PredefinedCategories {
		if c.Name == name {
			return c.Color, true
		}
	}
	return "", false
}
