package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"talad/internal/catalog"
	"talad/internal/models"
	"talad/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher is the narrow slice of the RabbitMQ client the order flow
// needs; tests substitute a mock.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles business logic related to orders and per-order chat.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	chatRepo    repositories.ChatRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, chatRepo repositories.ChatRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		chatRepo:    chatRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders (back office).
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves one user's orders (storefront order tracking).
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder prices each line with the catalog resolver against the
// product's current option tree, checks stock at both product and option
// value level, snapshots the selections and the option tree onto the item,
// and publishes an order.created event. Publish failure is logged but never
// fails the order.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	var totalAmount float64
	var processedItems []models.OrderItem

	for _, item := range orderRequest.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for product %s must be positive", item.ProductID)
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", item.ProductID, err)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)",
				product.Name, item.Quantity, product.Stock)
		}
		if err := checkOptionStock(product, item.SelectedOptions, item.Quantity); err != nil {
			return nil, err
		}

		unitPrice := catalog.ResolvePrice(product.Price, item.SelectedOptions, product.Options, product.DiscountPercent)
		processedItems = append(processedItems, models.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        item.Quantity,
			UnitPrice:       unitPrice,
			SelectedOptions: item.SelectedOptions,
			OptionSnapshot:  product.Options,
		})
		totalAmount += unitPrice * float64(item.Quantity)
	}

	newOrder := &models.Order{
		ID:          uuid.New().String(),
		UserID:      orderRequest.UserID,
		Items:       processedItems,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
		Address:     orderRequest.Address,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]any{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.Status,
		"total":   newOrder.TotalAmount,
	})

	return newOrder, nil
}

// checkOptionStock verifies that every selected option value can cover the
// requested quantity. Selections that match no option or value are ignored,
// consistent with price resolution.
func checkOptionStock(product *models.Product, selected map[string]string, quantity int) error {
	for _, opt := range product.Options {
		label, ok := selected[opt.Name]
		if !ok {
			continue
		}
		for _, val := range opt.Values {
			if val.Value != label {
				continue
			}
			if val.Stock < quantity {
				return fmt.Errorf("insufficient stock for option \"%s: %s\" of product %s (requested: %d, available: %d)",
					opt.Name, val.Value, product.Name, quantity, val.Stock)
			}
			break
		}
	}
	return nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusPending:   true,
		models.OrderStatusPaid:      true,
		models.OrderStatusShipped:   true,
		models.OrderStatusDelivered: true,
		models.OrderStatusCancelled: true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_updated", map[string]any{
		"orderID": id,
		"status":  status,
	})
	return nil
}

// ListMessages retrieves the chat history of an order, oldest first.
func (s *OrderService) ListMessages(orderID string) ([]models.ChatMessage, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListByOrder(orderID)
}

// PostMessage appends a message to an order's chat.
func (s *OrderService) PostMessage(orderID, senderID, body string) (*models.ChatMessage, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		SenderID:  senderID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.chatRepo.Create(msg); err != nil {
		return nil, fmt.Errorf("failed to store chat message for order %s: %w", orderID, err)
	}

	s.publishEvent("order.message", map[string]any{
		"orderID":  orderID,
		"senderID": senderID,
	})
	return msg, nil
}

// publishEvent marshals and publishes a marketplace event, logging (never
// propagating) failures so messaging outages cannot break checkout.
func (s *OrderService) publishEvent(routingKey string, payload map[string]any) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
