package model

import "time"

// DefaultOwner is the implicit owner used when the store runs in
// single-device mode without authentication.
const DefaultOwner = "local"

// Countdown represents one tracked future (or past) moment.
type Countdown struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	OwnerID      string    `gorm:"not null;index" json:"-"`
	Title        string    `gorm:"not null" json:"title"`
	Date         time.Time `gorm:"index" json:"date"`
	Category     string    `gorm:"index" json:"category"`
	Color        string    `json:"color"`
	Notes        string    `json:"notes"`
	Reminder     bool      `gorm:"default:false" json:"reminder"`
	ReminderDays int       `gorm:"default:0" json:"reminderDays"`
	ImageURL     string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
