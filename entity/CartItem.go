package entity

import (
	"gorm.io/gorm"
)

// CartItem = snapshot ของเมนู + จำนวน (ราคา fix ตั้งแต่ตอนหยิบใส่ตะกร้า)
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`

	MenuItemID uint     `json:"menuItemId"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Image      string   `json:"image"`
	Category   Category `json:"category"`
	Qty        int      `json:"qty"`
}
