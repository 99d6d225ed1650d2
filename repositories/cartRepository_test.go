package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/Kariqs/amexan-checkout/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Cart{}, &models.CartItem{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestFindWithoutCart(t *testing.T) {
	repo := NewCartRepository(openTestDB(t), 9)

	cart, err := repo.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(9), cart.UserID)
	assert.Empty(t, cart.Items)

	items, err := repo.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItemMergesByProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(openTestDB(t), 1)

	first, merged, err := repo.AddItem(ctx, models.CartItem{ProductId: 10, ProductName: "Laptop", Quantity: 1, TotalPrice: 1000, Color: "silver"})
	require.NoError(t, err)
	assert.False(t, merged)
	assert.NotZero(t, first.ID)

	again, merged, err := repo.AddItem(ctx, models.CartItem{ProductId: 10, ProductName: "Laptop", Quantity: 2, TotalPrice: 1000})
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 3, again.Quantity)

	_, _, err = repo.AddItem(ctx, models.CartItem{ProductId: 11, ProductName: "Mouse", Quantity: 1, TotalPrice: 25, ExtendedWarranty: true})
	require.NoError(t, err)

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, "silver", items[0].Color)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[1].ExtendedWarranty)
}

func TestCartsAreSeparatedByUser(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	alice := NewCartRepository(db, 1)
	bob := NewCartRepository(db, 2)

	_, _, err := alice.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Phone", Quantity: 1, TotalPrice: 500})
	require.NoError(t, err)
	_, _, err = bob.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Phone", Quantity: 4, TotalPrice: 500})
	require.NoError(t, err)

	require.NoError(t, alice.Clear(ctx))

	items, err := alice.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = bob.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestAddItemQuantityLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(openTestDB(t), 1)

	_, _, err := repo.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Cable", Quantity: models.MaxItemQuantity + 1, TotalPrice: 5})
	assert.ErrorIs(t, err, ErrQuantityLimit)

	_, _, err = repo.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Cable", Quantity: 600, TotalPrice: 5})
	require.NoError(t, err)

	_, _, err = repo.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Cable", Quantity: 600, TotalPrice: 5})
	assert.ErrorIs(t, err, ErrQuantityLimit)

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 600, items[0].Quantity)

	_, merged, err := repo.AddItem(ctx, models.CartItem{ProductId: 1, ProductName: "Cable", Quantity: 400, TotalPrice: 5})
	require.NoError(t, err)
	assert.True(t, merged)
}
