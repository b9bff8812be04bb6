package handlers

import (
	"fmt"
	"log"
	"strings"

	"talad/internal/models"
	"talad/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users, sellers, and wishlists.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user, seller, and wishlist routes with the
// Fiber app. /sellers is a role-filtered view over the same accounts.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)

	userRoutes.Get("/:id/wishlist", h.HandleGetWishlist)
	userRoutes.Post("/:id/wishlist/:productID", h.HandleAddToWishlist)
	userRoutes.Delete("/:id/wishlist/:productID", h.HandleRemoveFromWishlist)

	router.Get("/sellers", h.HandleGetSellers)
}

// HandleGetUsers retrieves all users, optionally filtered by role.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.Query("role"))
	if err != nil {
		log.Printf("Error getting users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleGetSellers retrieves all seller accounts.
func (h *UserHandler) HandleGetSellers(c *fiber.Ctx) error {
	sellers, err := h.service.GetAllUsers(models.RoleSeller)
	if err != nil {
		log.Printf("Error getting sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sellers",
			"error":   err.Error(),
		})
	}
	return c.JSON(sellers)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.service.GetUserByID(userID)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", userID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user or seller account.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(user); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateUser(&user); err != nil {
		log.Printf("Error creating user: %v", err)
		if strings.Contains(err.Error(), "already taken") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Could not create user",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser updates an existing user or seller account.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	user.ID = userID
	if err := h.validate.Struct(user); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateUser(&user); err != nil {
		log.Printf("Error updating user %s: %v", userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", userID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.service.DeleteUser(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("User with ID %s not found", userID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
	})
}

// HandleGetWishlist retrieves the products on a user's wishlist.
func (h *UserHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID := c.Params("id")
	products, err := h.service.GetWishlist(userID)
	if err != nil {
		log.Printf("Error getting wishlist for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleAddToWishlist saves a product on a user's wishlist.
func (h *UserHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	userID := c.Params("id")
	productID := c.Params("productID")
	if err := h.service.AddToWishlist(userID, productID); err != nil {
		log.Printf("Error adding product %s to wishlist of user %s: %v", productID, userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add product to wishlist",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s added to wishlist", productID),
	})
}

// HandleRemoveFromWishlist removes a product from a user's wishlist.
func (h *UserHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	userID := c.Params("id")
	productID := c.Params("productID")
	if err := h.service.RemoveFromWishlist(userID, productID); err != nil {
		log.Printf("Error removing product %s from wishlist of user %s: %v", productID, userID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Wishlist entry for product %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove product from wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s removed from wishlist", productID),
	})
}
