package models

import "time"

// Order statuses, in lifecycle order. Cancellation is terminal from any
// non-delivered state.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem represents a single line within an order. UnitPrice is the
// resolved price at order time (base price plus selected option adjustments
// and discount); SelectedOptions and OptionSnapshot freeze the choices and
// the option tree as they were when the order was placed, so later product
// edits cannot change what the buyer agreed to pay.
type OrderItem struct {
	ID              uint              `json:"-" gorm:"primaryKey"`
	OrderID         string            `json:"-" gorm:"index;type:varchar(36)"`
	ProductID       string            `json:"product_id" gorm:"type:varchar(36)"`
	ProductName     string            `json:"product_name"`
	Quantity        int               `json:"quantity"`
	UnitPrice       float64           `json:"unit_price"`
	SelectedOptions map[string]string `json:"selected_options" gorm:"serializer:json"`
	OptionSnapshot  []ProductOption   `json:"option_snapshot,omitempty" gorm:"serializer:json"`
}

// Order represents a customer order.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Address     string      `json:"address"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ChatMessage is one message in the per-order conversation between the
// buyer and the seller.
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index;type:varchar(36)"`
	SenderID  string    `json:"sender_id" gorm:"type:varchar(36)"`
	Body      string    `json:"body" validate:"required,max=2000"`
	CreatedAt time.Time `json:"created_at"`
}
