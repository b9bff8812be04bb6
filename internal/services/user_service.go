package services

import (
	"fmt"

	"talad/internal/models"
	"talad/internal/repositories"
)

// UserService handles business logic for users, sellers, and wishlists.
type UserService struct {
	userRepo     repositories.UserRepository
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetAllUsers retrieves users, optionally restricted to one role.
func (s *UserService) GetAllUsers(role string) ([]models.User, error) {
	return s.userRepo.GetAll(role)
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// CreateUser creates a new user or seller account.
func (s *UserService) CreateUser(user *models.User) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser updates an existing user or seller account.
func (s *UserService) UpdateUser(user *models.User) error {
	return s.userRepo.Update(user)
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}

// GetWishlist retrieves the products on a user's wishlist. Products deleted
// since they were saved are skipped rather than erroring the whole listing.
func (s *UserService) GetWishlist(userID string) ([]models.Product, error) {
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		products = append(products, *product)
	}
	return products, nil
}

// AddToWishlist saves a product on a user's wishlist.
func (s *UserService) AddToWishlist(userID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.wishlistRepo.Add(&models.WishlistItem{UserID: userID, ProductID: productID})
}

// RemoveFromWishlist removes a product from a user's wishlist.
func (s *UserService) RemoveFromWishlist(userID, productID string) error {
	return s.wishlistRepo.Remove(userID, productID)
}
