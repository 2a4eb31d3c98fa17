package entity

import (
	"gorm.io/gorm"
)

const PlaceholderImage = "/placeholder.svg?height=200&width=200"

type MenuItem struct {
	gorm.Model
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // บาท (จำนวนเต็ม)
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Available   bool     `json:"available" gorm:"default:true"`
}
