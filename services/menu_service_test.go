package services

import (
	"testing"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(db))
}

func TestCreateMenuItemValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.Create(&CreateMenuItemIn{Name: "  ", Price: 25})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 0})
	assert.ErrorIs(t, err, ErrBadPrice)

	_, err = svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 25, Category: "dessert"})
	assert.ErrorIs(t, err, ErrBadCategory)
}

func TestCreateMenuItemDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	item, err := svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 25})
	require.NoError(t, err)
	assert.Equal(t, entity.PlaceholderImage, item.Image)
	assert.Equal(t, entity.CategoryDrinks, item.Category)
	assert.True(t, item.Available)
}

func TestUpdateMenuItemPartialMerge(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	item, err := svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 25, Description: "หวานน้อย"})
	require.NoError(t, err)

	newPrice := int64(30)
	got, err := svc.Update(item.ID, &UpdateMenuItemIn{Price: &newPrice})
	require.NoError(t, err)

	// แตะเฉพาะราคา ที่เหลือคงเดิม
	assert.Equal(t, int64(30), got.Price)
	assert.Equal(t, "ชาเย็น", got.Name)
	assert.Equal(t, "หวานน้อย", got.Description)
	assert.False(t, got.UpdatedAt.Before(item.UpdatedAt))

	bad := int64(-5)
	_, err = svc.Update(item.ID, &UpdateMenuItemIn{Price: &bad})
	assert.ErrorIs(t, err, ErrBadPrice)
}

func TestMenuListSortedByCategoryThenName(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	_, err := svc.Create(&CreateMenuItemIn{Name: "b-sandwich", Price: 45, Category: entity.CategoryFood})
	require.NoError(t, err)
	_, err = svc.Create(&CreateMenuItemIn{Name: "b-tea", Price: 25, Category: entity.CategoryDrinks})
	require.NoError(t, err)
	_, err = svc.Create(&CreateMenuItemIn{Name: "a-coffee", Price: 30, Category: entity.CategoryDrinks})
	require.NoError(t, err)

	items, err := svc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a-coffee", items[0].Name)
	assert.Equal(t, "b-tea", items[1].Name)
	assert.Equal(t, "b-sandwich", items[2].Name)
}

func TestUnavailableHiddenFromStorefrontOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	item, err := svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 25})
	require.NoError(t, err)
	require.NoError(t, svc.SetAvailability(item.ID, false))

	visible, err := svc.ListAvailable()
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteMenuItemKeepsOrderSnapshots(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)

	item, err := svc.Create(&CreateMenuItemIn{Name: "ชาเย็น", Price: 25})
	require.NoError(t, err)

	order := &entity.Order{CustomerName: "Somchai", Total: 25, PaymentStatus: entity.PaymentPending}
	require.NoError(t, db.Create(order).Error)
	oi := &entity.OrderItem{
		OrderID: order.ID, MenuItemID: item.ID,
		MenuItemName: item.Name, MenuItemPrice: item.Price, Quantity: 1,
	}
	require.NoError(t, db.Create(oi).Error)

	require.NoError(t, svc.Delete(item.ID))
	assert.ErrorIs(t, svc.Delete(item.ID), ErrMenuNotFound)

	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "ชาเย็น", items[0].MenuItemName)
	assert.Equal(t, int64(25), items[0].MenuItemPrice)
}
