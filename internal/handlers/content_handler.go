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

// ContentHandler handles HTTP requests for banners and announcements.
type ContentHandler struct {
	service  *services.ContentService
	validate *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService) *ContentHandler {
	return &ContentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers banner and announcement routes with the Fiber app.
// The storefront sees only currently-active entries; the back office lists
// everything with ?all=true.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	bannerRoutes := router.Group("/banners")
	bannerRoutes.Get("/", h.HandleGetBanners)
	bannerRoutes.Post("/", h.HandleCreateBanner)
	bannerRoutes.Put("/:id", h.HandleUpdateBanner)
	bannerRoutes.Delete("/:id", h.HandleDeleteBanner)

	announcementRoutes := router.Group("/announcements")
	announcementRoutes.Get("/", h.HandleGetAnnouncements)
	announcementRoutes.Post("/", h.HandleCreateAnnouncement)
	announcementRoutes.Put("/:id", h.HandleUpdateAnnouncement)
	announcementRoutes.Delete("/:id", h.HandleDeleteAnnouncement)
}

// HandleGetBanners retrieves banners: active ones by default, every banner
// with ?all=true.
func (h *ContentHandler) HandleGetBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	var err error
	if c.QueryBool("all") {
		banners, err = h.service.GetAllBanners()
	} else {
		banners, err = h.service.GetActiveBanners()
	}
	if err != nil {
		log.Printf("Error getting banners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve banners",
			"error":   err.Error(),
		})
	}
	return c.JSON(banners)
}

// HandleCreateBanner creates a new banner.
func (h *ContentHandler) HandleCreateBanner(c *fiber.Ctx) error {
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		log.Printf("Error parsing create banner request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(banner); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateBanner(&banner); err != nil {
		log.Printf("Error creating banner: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create banner",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(banner)
}

// HandleUpdateBanner updates an existing banner.
func (h *ContentHandler) HandleUpdateBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	var banner models.Banner
	if err := c.BodyParser(&banner); err != nil {
		log.Printf("Error parsing update banner request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	banner.ID = bannerID
	if err := h.validate.Struct(banner); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateBanner(&banner); err != nil {
		log.Printf("Error updating banner %s: %v", bannerID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", bannerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(banner)
}

// HandleDeleteBanner deletes a banner by its ID.
func (h *ContentHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	if err := h.service.DeleteBanner(bannerID); err != nil {
		log.Printf("Error deleting banner %s: %v", bannerID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Banner with ID %s not found", bannerID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete banner",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Banner %s deleted successfully", bannerID),
	})
}

// HandleGetAnnouncements retrieves announcements: active ones by default,
// everything with ?all=true.
func (h *ContentHandler) HandleGetAnnouncements(c *fiber.Ctx) error {
	var announcements []models.Announcement
	var err error
	if c.QueryBool("all") {
		announcements, err = h.service.GetAllAnnouncements()
	} else {
		announcements, err = h.service.GetActiveAnnouncements()
	}
	if err != nil {
		log.Printf("Error getting announcements: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve announcements",
			"error":   err.Error(),
		})
	}
	return c.JSON(announcements)
}

// HandleCreateAnnouncement creates a new announcement.
func (h *ContentHandler) HandleCreateAnnouncement(c *fiber.Ctx) error {
	var announcement models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		log.Printf("Error parsing create announcement request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(announcement); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateAnnouncement(&announcement); err != nil {
		log.Printf("Error creating announcement: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create announcement",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(announcement)
}

// HandleUpdateAnnouncement updates an existing announcement.
func (h *ContentHandler) HandleUpdateAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Params("id")
	var announcement models.Announcement
	if err := c.BodyParser(&announcement); err != nil {
		log.Printf("Error parsing update announcement request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	announcement.ID = announcementID
	if err := h.validate.Struct(announcement); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateAnnouncement(&announcement); err != nil {
		log.Printf("Error updating announcement %s: %v", announcementID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Announcement with ID %s not found", announcementID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update announcement",
			"error":   err.Error(),
		})
	}
	return c.JSON(announcement)
}

// HandleDeleteAnnouncement deletes an announcement by its ID.
func (h *ContentHandler) HandleDeleteAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Params("id")
	if err := h.service.DeleteAnnouncement(announcementID); err != nil {
		log.Printf("Error deleting announcement %s: %v", announcementID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Announcement with ID %s not found", announcementID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete announcement",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Announcement %s deleted successfully", announcementID),
	})
}
