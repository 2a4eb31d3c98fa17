package repository

import (
	"github.com/waritsara2543/food-ordering/entity"

	"gorm.io/gorm"
)

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

func (r *SessionRepository) FindByToken(token string) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Save(s *entity.Session) error {
	return r.DB.Save(s).Error
}

func (r *SessionRepository) SaveTx(tx *gorm.DB, s *entity.Session) error {
	return tx.Save(s).Error
}
