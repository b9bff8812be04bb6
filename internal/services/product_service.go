package services

import (
	"fmt"
	"time"

	"talad/internal/catalog"
	"talad/internal/models"
	"talad/internal/repositories"

	gocache "github.com/patrickmn/go-cache"
)

// ProductService handles business logic related to products: the option
// normalization pipeline on writes, and cached reads for the storefront.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *gocache.Cache
}

// NewProductService creates a new ProductService. cacheTTL bounds how stale
// a storefront product read may be; writes invalidate eagerly anyway.
func NewProductService(repo repositories.ProductRepository, cacheTTL time.Duration) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func productCacheKey(id string) string {
	return "product:" + id
}

// GetAllProducts retrieves products matching the filter.
func (s *ProductService) GetAllProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductByID retrieves a single product, serving repeated storefront
// reads from the in-process cache.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	if cached, ok := s.cache.Get(productCacheKey(id)); ok {
		if product, ok := cached.(*models.Product); ok {
			return product, nil
		}
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(productCacheKey(id), product)
	return product, nil
}

// CreateProduct runs the option pipeline (normalize, dedupe, validate) on
// the raw option payload and persists the product with its canonical option
// tree. A *catalog.ValidationError is returned as-is so the handler can map
// it to a client error.
func (s *ProductService) CreateProduct(product *models.Product, rawOptions any) error {
	options, err := s.buildOptions(rawOptions)
	if err != nil {
		return err
	}
	product.Options = options

	if err := s.repo.Create(product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct re-runs the full option pipeline and replaces the product's
// option tree wholesale. An update always re-submits the complete tree;
// there is no incremental option editing.
func (s *ProductService) UpdateProduct(product *models.Product, rawOptions any) error {
	options, err := s.buildOptions(rawOptions)
	if err != nil {
		return err
	}
	product.Options = options

	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.cache.Delete(productCacheKey(product.ID))
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Delete(productCacheKey(id))
	return nil
}

// QuotePrice computes the displayed price for a product given the buyer's
// current option selections.
func (s *ProductService) QuotePrice(productID string, selected map[string]string) (float64, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return 0, err
	}
	return catalog.ResolvePrice(product.Price, selected, product.Options, product.DiscountPercent), nil
}

func (s *ProductService) buildOptions(rawOptions any) ([]models.ProductOption, error) {
	options := catalog.DedupeOptionNames(catalog.NormalizeOptions(rawOptions))
	if err := catalog.ValidateOptions(options); err != nil {
		return nil, err
	}
	return options, nil
}
