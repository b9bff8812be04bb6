package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"talad/internal/catalog"
	"talad/internal/models"
	"talad/internal/repositories"
	"talad/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/:id/quote", h.HandleQuotePrice)
	// Back-office product management
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// ProductRequest is the create/update request body. Options accepts any of
// the historical payload shapes (JSON string, option list, flat label list,
// name-to-labels map); it is normalized before persistence.
type ProductRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"omitempty,max=5000"`
	Category        string   `json:"category" validate:"omitempty,max=100"`
	Price           float64  `json:"price" validate:"gte=0"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	DiscountPercent float64  `json:"discount_percent" validate:"gte=0,lte=100"`
	Stock           int      `json:"stock" validate:"gte=0"`
	SellerID        string   `json:"seller_id"`
	Options         any      `json:"options"`
}

func (r *ProductRequest) toModel() *models.Product {
	return &models.Product{
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		Image:           r.Image,
		Images:          r.Images,
		DiscountPercent: r.DiscountPercent,
		Stock:           r.Stock,
		SellerID:        r.SellerID,
	}
}

// HandleGetProducts retrieves products, optionally filtered by category,
// seller, or a name search.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Category: c.Query("category"),
		SellerID: c.Query("seller_id"),
		Search:   c.Query("q"),
	}
	products, err := h.service.GetAllProducts(filter)
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// QuoteRequest carries the buyer's current option selections.
type QuoteRequest struct {
	SelectedOptions map[string]string `json:"selected_options"`
}

// HandleQuotePrice computes the displayed price for a product given the
// buyer's option selections.
func (h *ProductHandler) HandleQuotePrice(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quote request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	price, err := h.service.QuotePrice(productID, req.SelectedOptions)
	if err != nil {
		log.Printf("Error quoting price for product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute price",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product_id": productID,
		"price":      price,
	})
}

// HandleCreateProduct creates a new product with its option tree.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := req.toModel()
	if err := h.service.CreateProduct(product, req.Options); err != nil {
		return h.optionOrServerError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product, fully replacing its option tree.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	product := req.toModel()
	product.ID = productID
	if err := h.service.UpdateProduct(product, req.Options); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return h.optionOrServerError(c, "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}

// optionOrServerError maps option validation failures to 400 and everything
// else to 500.
func (h *ProductHandler) optionOrServerError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product options",
			"error":   verr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// validationErrorResponse renders validator.ValidationErrors as a field map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
