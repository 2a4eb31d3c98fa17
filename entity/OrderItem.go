package entity

import (
	"gorm.io/gorm"
)

// OrderItem เก็บ snapshot ของเมนู ณ ตอนสั่ง
// MenuItemID เป็นแค่ back-reference ไม่ผูก FK - แก้/ลบเมนูทีหลังต้องไม่กระทบออเดอร์เก่า
type OrderItem struct {
	gorm.Model
	OrderID uint `json:"orderId"`

	MenuItemID    uint   `json:"menuItemId"`
	MenuItemName  string `json:"menuItemName"`
	MenuItemPrice int64  `json:"menuItemPrice"`
	Quantity      int    `json:"quantity"`
}
