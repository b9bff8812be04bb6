package repositories

import "talad/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}

// ContentRepository defines the interface for banner and announcement data
// access. Both are small flat tables managed by the back office.
type ContentRepository interface {
	GetAllBanners() ([]models.Banner, error)
	GetBannerByID(id string) (*models.Banner, error)
	CreateBanner(banner *models.Banner) error
	UpdateBanner(banner *models.Banner) error
	DeleteBanner(id string) error

	GetAllAnnouncements() ([]models.Announcement, error)
	GetAnnouncementByID(id string) (*models.Announcement, error)
	CreateAnnouncement(announcement *models.Announcement) error
	UpdateAnnouncement(announcement *models.Announcement) error
	DeleteAnnouncement(id string) error
}
