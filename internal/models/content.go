package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a flat product category shown in storefront navigation.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(100)" validate:"omitempty,max=100"`
	Position   int    `json:"position"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Banner is a storefront hero banner. StartAt/EndAt bound an optional
// campaign window; a nil bound is open-ended.
type Banner struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string     `json:"title" validate:"required,max=200"`
	ImageURL   string     `json:"image_url" validate:"required,url"`
	LinkURL    string     `json:"link_url" validate:"omitempty,url"`
	Position   int        `json:"position"`
	IsActive   bool       `json:"is_active"`
	StartAt    *time.Time `json:"start_at,omitempty"`
	EndAt      *time.Time `json:"end_at,omitempty"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// IsCurrentlyActive reports whether the banner should be shown right now.
func (b *Banner) IsCurrentlyActive(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartAt != nil && now.Before(*b.StartAt) {
		return false
	}
	if b.EndAt != nil && now.After(*b.EndAt) {
		return false
	}
	return true
}

// Announcement is a storefront-wide notice (e.g. holiday shipping pauses).
type Announcement struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Message    string     `json:"message" validate:"required,max=1000"`
	IsActive   bool       `json:"is_active"`
	StartAt    *time.Time `json:"start_at,omitempty"`
	EndAt      *time.Time `json:"end_at,omitempty"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// IsCurrentlyActive reports whether the announcement should be shown right now.
func (a *Announcement) IsCurrentlyActive(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartAt != nil && now.Before(*a.StartAt) {
		return false
	}
	if a.EndAt != nil && now.After(*a.EndAt) {
		return false
	}
	return true
}
