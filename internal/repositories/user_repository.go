package repositories

import "talad/internal/models"

// UserRepository defines the interface for user and seller data access.
type UserRepository interface {
	GetAll(role string) ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	ListByUser(userID string) ([]models.WishlistItem, error)
	Add(item *models.WishlistItem) error
	Remove(userID, productID string) error
}
