package models

import "gorm.io/gorm"

// User roles.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User represents a marketplace account. Sellers are users with the seller
// role and a shop profile; there is no separate seller table.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Role       string `json:"role" gorm:"type:varchar(20);default:customer" validate:"omitempty,oneof=customer seller admin"`
	ShopName   string `json:"shop_name,omitempty" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	ShopDetail string `json:"shop_detail,omitempty" validate:"omitempty,max=2000"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// WishlistItem marks a product a user has saved for later. One row per
// (user, product) pair.
type WishlistItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)"`
	gorm.Model
}
