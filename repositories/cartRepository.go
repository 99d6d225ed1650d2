package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/amexan-checkout/checkout"
	"github.com/Kariqs/amexan-checkout/models"
	"gorm.io/gorm"
)

var ErrQuantityLimit = fmt.Errorf("cart line quantity cannot exceed %d", models.MaxItemQuantity)

// CartRepository reads and writes one user's cart.
type CartRepository struct {
	db     *gorm.DB
	userID uint
}

func NewCartRepository(db *gorm.DB, userID uint) *CartRepository {
	return &CartRepository{db: db, userID: userID}
}

// Find loads the cart with its items. A user without a cart gets an empty one.
func (r *CartRepository) Find(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ?", r.userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{UserID: r.userID}, nil
	}
	return cart, err
}

// AddItem puts a line into the cart, creating the cart on first use. Adding a
// product already in the cart raises its quantity.
func (r *CartRepository) AddItem(ctx context.Context, item models.CartItem) (models.CartItem, bool, error) {
	if item.Quantity < 1 || item.Quantity > models.MaxItemQuantity {
		return models.CartItem{}, false, ErrQuantityLimit
	}

	var saved models.CartItem
	merged := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart := models.Cart{UserID: r.userID}
		if err := tx.Where("user_id = ?", r.userID).FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, item.ProductId).First(&existing).Error
		if err == nil {
			if existing.Quantity > models.MaxItemQuantity-item.Quantity {
				return ErrQuantityLimit
			}
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			saved, merged = existing, true
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item.ID = 0
		item.CartID = cart.ID
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		saved = item
		return nil
	})
	return saved, merged, err
}

// Items implements checkout.Cart.
func (r *CartRepository) Items(ctx context.Context) ([]checkout.CartItem, error) {
	cart, err := r.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]checkout.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, item.ToCheckoutItem())
	}
	return items, nil
}

// Clear implements checkout.Cart.
func (r *CartRepository) Clear(ctx context.Context) error {
	sub := r.db.Model(&models.Cart{}).Select("id").Where("user_id = ?", r.userID)
	return r.db.WithContext(ctx).
		Unscoped().
		Where("cart_id IN (?)", sub).
		Delete(&models.CartItem{}).Error
}
