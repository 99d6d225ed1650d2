package models

import (
	"github.com/Kariqs/amexan-checkout/checkout"
	"gorm.io/gorm"
)

// MaxItemQuantity caps the quantity of a single cart line.
const MaxItemQuantity = 1000

type CartItem struct {
	gorm.Model
	CartID           uint    `json:"cartId"`
	ProductId        int     `json:"productId" binding:"required"`
	ProductName      string  `json:"productName" binding:"required"`
	ProductImageUrl  string  `json:"productImageUrl"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity" binding:"required,min=1,max=1000"`
	TotalPrice       float64 `json:"totalPrice" binding:"gte=0"`
	ExtendedWarranty bool    `json:"extendedWarranty"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// ToCheckoutItem is the line as the checkout flow reads it.
func (i CartItem) ToCheckoutItem() checkout.CartItem {
	return checkout.CartItem{
		ID:               i.ID,
		Name:             i.ProductName,
		Image:            i.ProductImageUrl,
		Color:            i.Color,
		Quantity:         i.Quantity,
		TotalPrice:       i.TotalPrice,
		ExtendedWarranty: i.ExtendedWarranty,
	}
}
