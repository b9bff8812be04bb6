package repositories

import (
	"errors"
	"fmt"
	"talad/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// withOptions preloads the option tree in its persisted order. Price
// resolution folds options in list order, so the ORDER BY here is load-bearing.
func (r *GORMProductRepository) withOptions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Options.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// GetAll retrieves products matching the filter from the database.
func (r *GORMProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	query := r.withOptions(r.db)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SellerID != "" {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.withOptions(r.db).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product with its option tree in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates a product, replacing its entire option tree. The delete and
// the recreate run in one transaction so a crash mid-update cannot leave the
// product with a partial option set.
func (r *GORMProductRepository) Update(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, "id = ?", product.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %s not found for update", product.ID)
			}
			return fmt.Errorf("failed to load product %s for update: %w", product.ID, err)
		}

		if err := deleteOptionTree(tx, product.ID); err != nil {
			return err
		}

		// Zero out child primary keys so GORM inserts fresh rows instead of
		// resurrecting the deleted ones.
		for i := range product.Options {
			product.Options[i].ID = 0
			product.Options[i].ProductID = product.ID
			for j := range product.Options[i].Values {
				product.Options[i].Values[j].ID = 0
				product.Options[i].Values[j].OptionID = 0
			}
		}

		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
}

// Delete deletes a product and its option tree by ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteOptionTree(tx, id); err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s not found for deletion", id)
		}
		return nil
	})
}

// deleteOptionTree removes all option and value rows belonging to a product.
func deleteOptionTree(tx *gorm.DB, productID string) error {
	var optionIDs []uint
	if err := tx.Model(&models.ProductOption{}).Where("product_id = ?", productID).Pluck("id", &optionIDs).Error; err != nil {
		return fmt.Errorf("failed to load option IDs for product %s: %w", productID, err)
	}
	if len(optionIDs) == 0 {
		return nil
	}
	if err := tx.Where("option_id IN ?", optionIDs).Delete(&models.ProductOptionValue{}).Error; err != nil {
		return fmt.Errorf("failed to delete option values for product %s: %w", productID, err)
	}
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductOption{}).Error; err != nil {
		return fmt.Errorf("failed to delete options for product %s: %w", productID, err)
	}
	return nil
}
