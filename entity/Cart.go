package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	SessionID uint `json:"sessionId" gorm:"uniqueIndex"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
