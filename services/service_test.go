package services

import (
	"fmt"
	"testing"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Session{}, &entity.Cart{}, &entity.CartItem{},
	))
	return db
}

func newTestSession(t *testing.T, db *gorm.DB) *entity.Session {
	t.Helper()

	sess := &entity.Session{Token: "test-" + t.Name(), CheckoutState: entity.CheckoutFilling}
	require.NoError(t, db.Create(sess).Error)
	return sess
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price int64, category entity.Category) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{
		Name:      name,
		Price:     price,
		Image:     entity.PlaceholderImage,
		Category:  category,
		Available: true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewSessionRepository(db),
	)
}
