package entity

import (
	"gorm.io/gorm"
)

// Session แทน state ที่เดิมอยู่ใน browser storage ของลูกค้า
// (ตะกร้า, สลิปที่ค้างไว้, ธง announcement) — อยู่ได้ข้าม reload ผ่าน token
type Session struct {
	gorm.Model
	Token                 string `gorm:"uniqueIndex" json:"token"`
	AnnouncementDismissed bool   `json:"announcementDismissed"`

	SlipData      string        `gorm:"type:text" json:"-"` // data URL ที่ stage ไว้ก่อน submit
	CheckoutState CheckoutState `gorm:"default:filling" json:"checkoutState"`
	LastOrderID   uint          `json:"lastOrderId"` // ออเดอร์ล่าสุดตอน completed

	Cart *Cart `json:"-"`
}
