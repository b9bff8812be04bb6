package models

import "gorm.io/gorm"

// Price types for a product option value. "add" adds the value's price on
// top of the product's base price; "replace" overwrites the base price.
const (
	PriceTypeAdd     = "add"
	PriceTypeReplace = "replace"
)

// Product represents a product listed on the marketplace.
type Product struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SellerID        string          `json:"seller_id" gorm:"index;type:varchar(36)"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description" validate:"omitempty,max=5000"`
	Category        string          `json:"category" gorm:"index" validate:"omitempty,max=100"`
	Price           float64         `json:"price" validate:"gte=0"`
	Image           string          `json:"image"`
	Images          []string        `json:"images" gorm:"serializer:json"`
	Options         []ProductOption `json:"options" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Rating          float64         `json:"rating" validate:"gte=0,lte=5"`
	Reviews         int             `json:"reviews" validate:"gte=0"`
	Sold            int             `json:"sold" validate:"gte=0"`
	DiscountPercent float64         `json:"discount_percent" validate:"gte=0,lte=100"`
	Stock           int             `json:"stock" validate:"gte=0"`
	gorm.Model                      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductOption is one named axis of variation (e.g. "ขนาด", "สี").
// Options are fully replaced on every product update; there is no
// incremental option editing. Position preserves submitted order, which
// price resolution depends on.
type ProductOption struct {
	ID        uint                 `json:"-" gorm:"primaryKey"`
	ProductID string               `json:"-" gorm:"index;type:varchar(36)"`
	Name      string               `json:"name"`
	Position  int                  `json:"-"`
	Values    []ProductOptionValue `json:"values" gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
}

// ProductOptionValue is one concrete choice within an option (e.g. "M",
// "แดง"), carrying its own price adjustment and stock.
type ProductOptionValue struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OptionID  uint    `json:"-" gorm:"index"`
	Value     string  `json:"value"`
	Price     float64 `json:"price" gorm:"default:0"`
	PriceType string  `json:"price_type" gorm:"default:add"`
	Stock     int     `json:"stock" gorm:"default:0"`
	SKU       string  `json:"sku,omitempty"`
	Position  int     `json:"-"`
}
