// repository/menu_repository.go
package repository

import (
	"github.com/waritsara2543/food-ordering/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// เมนูที่ลูกค้าเห็น เรียงหมวด -> ชื่อ
func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("available = ?", true).
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// เมนูทั้งหมด (ฝั่ง admin)
func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// partial merge - อัปเดตเฉพาะ field ที่ส่งมา (UpdatedAt โดน stamp โดย gorm)
func (r *MenuRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
