package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"` // ลูกค้าใช้เป็นช่องโน้ตด้วย
	Total         int64  `json:"total"`

	PaymentSlip   string        `gorm:"type:text" json:"paymentSlip,omitempty"` // data URL
	PaymentStatus PaymentStatus `gorm:"default:pending" json:"paymentStatus"`

	Items []OrderItem `json:"items"`
}
