package repository

import (
	"errors"

	"github.com/waritsara2543/food-ordering/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืนตะกร้าของ session (ถ้าไม่มีก็คืนตะกร้าว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
func (r *CartRepository) GetCartWithItems(sessionID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{SessionID: sessionID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(sessionID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("session_id = ?", sessionID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{SessionID: sessionID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) FindItem(cartID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SaveItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Save(it).Error
}

func (r *CartRepository) CreateItem(tx *gorm.DB, it *entity.CartItem) error {
	return tx.Create(it).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, sessionID uint) error {
	var c entity.Cart
	if err := tx.Where("session_id = ?", sessionID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
