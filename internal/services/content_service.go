package services

import (
	"time"

	"talad/internal/models"
	"talad/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories in display order.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	return s.repo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}

// ContentService handles banners and announcements.
type ContentService struct {
	repo repositories.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(repo repositories.ContentRepository) *ContentService {
	return &ContentService{
		repo: repo,
	}
}

// GetActiveBanners retrieves the banners currently within their campaign
// window, for the storefront.
func (s *ContentService) GetActiveBanners() ([]models.Banner, error) {
	banners, err := s.repo.GetAllBanners()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := make([]models.Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsCurrentlyActive(now) {
			active = append(active, b)
		}
	}
	return active, nil
}

// GetAllBanners retrieves every banner, including inactive ones (back office).
func (s *ContentService) GetAllBanners() ([]models.Banner, error) {
	return s.repo.GetAllBanners()
}

// CreateBanner creates a new banner.
func (s *ContentService) CreateBanner(banner *models.Banner) error {
	return s.repo.CreateBanner(banner)
}

// UpdateBanner updates an existing banner.
func (s *ContentService) UpdateBanner(banner *models.Banner) error {
	return s.repo.UpdateBanner(banner)
}

// DeleteBanner deletes a banner by its ID.
func (s *ContentService) DeleteBanner(id string) error {
	return s.repo.DeleteBanner(id)
}

// GetActiveAnnouncements retrieves announcements currently in effect.
func (s *ContentService) GetActiveAnnouncements() ([]models.Announcement, error) {
	announcements, err := s.repo.GetAllAnnouncements()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsCurrentlyActive(now) {
			active = append(active, a)
		}
	}
	return active, nil
}

// GetAllAnnouncements retrieves every announcement (back office).
func (s *ContentService) GetAllAnnouncements() ([]models.Announcement, error) {
	return s.repo.GetAllAnnouncements()
}

// CreateAnnouncement creates a new announcement.
func (s *ContentService) CreateAnnouncement(announcement *models.Announcement) error {
	return s.repo.CreateAnnouncement(announcement)
}

// UpdateAnnouncement updates an existing announcement.
func (s *ContentService) UpdateAnnouncement(announcement *models.Announcement) error {
	return s.repo.UpdateAnnouncement(announcement)
}

// DeleteAnnouncement deletes an announcement by its ID.
func (s *ContentService) DeleteAnnouncement(id string) error {
	return s.repo.DeleteAnnouncement(id)
}
