package repositories

import (
	"talad/internal/models"
)

// ProductFilter narrows storefront and back-office product listings.
// Zero-value fields are ignored.
type ProductFilter struct {
	Category string
	SellerID string
	Search   string // matched against product name
}

// ProductRepository defines the interface for product data access.
//
// Update replaces the product's entire option tree (delete all rows, then
// recreate from the submission) inside a single transaction, so a crash
// mid-update can never leave a product with a partial option set.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
