package repositories

import (
	"errors"
	"fmt"
	"talad/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories in display order.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("position ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s not found for update", category.ID)
	}
	return nil
}

// Delete deletes a category by its ID.
func (r *GORMCategoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s not found for deletion", id)
	}
	return nil
}

// GORMContentRepository is a GORM implementation of ContentRepository.
type GORMContentRepository struct {
	db *gorm.DB
}

// NewGORMContentRepository creates a new instance of GORMContentRepository.
func NewGORMContentRepository(db *gorm.DB) *GORMContentRepository {
	return &GORMContentRepository{
		db: db,
	}
}

// GetAllBanners retrieves all banners in display order.
func (r *GORMContentRepository) GetAllBanners() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Order("position ASC").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get banners: %w", err)
	}
	return banners, nil
}

// GetBannerByID retrieves a banner by its ID.
func (r *GORMContentRepository) GetBannerByID(id string) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("banner with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get banner by ID %s: %w", id, err)
	}
	return &banner, nil
}

// CreateBanner creates a new banner.
func (r *GORMContentRepository) CreateBanner(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// UpdateBanner updates an existing banner.
func (r *GORMContentRepository) UpdateBanner(banner *models.Banner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for update", banner.ID)
	}
	return nil
}

// DeleteBanner deletes a banner by its ID.
func (r *GORMContentRepository) DeleteBanner(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for deletion", id)
	}
	return nil
}

// GetAllAnnouncements retrieves all announcements, newest first.
func (r *GORMContentRepository) GetAllAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := r.db.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}
	return announcements, nil
}

// GetAnnouncementByID retrieves an announcement by its ID.
func (r *GORMContentRepository) GetAnnouncementByID(id string) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.First(&announcement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("announcement with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get announcement by ID %s: %w", id, err)
	}
	return &announcement, nil
}

// CreateAnnouncement creates a new announcement.
func (r *GORMContentRepository) CreateAnnouncement(announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.New().String()
	}
	if err := r.db.Create(announcement).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

// UpdateAnnouncement updates an existing announcement.
func (r *GORMContentRepository) UpdateAnnouncement(announcement *models.Announcement) error {
	res := r.db.Save(announcement)
	if res.Error != nil {
		return fmt.Errorf("failed to update announcement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("announcement with ID %s not found for update", announcement.ID)
	}
	return nil
}

// DeleteAnnouncement deletes an announcement by its ID.
func (r *GORMContentRepository) DeleteAnnouncement(id string) error {
	res := r.db.Delete(&models.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("announcement with ID %s not found for deletion", id)
	}
	return nil
}
