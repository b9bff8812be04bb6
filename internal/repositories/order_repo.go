package repositories

import (
	"talad/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	// Orders are never deleted; cancellation is a status change.
}

// ChatRepository defines the interface for per-order chat message access.
type ChatRepository interface {
	ListByOrder(orderID string) ([]models.ChatMessage, error)
	Create(msg *models.ChatMessage) error
}
