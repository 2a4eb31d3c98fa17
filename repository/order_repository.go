// repository/order_repository.go
package repository

import (
	"time"

	"github.com/waritsara2543/food-ordering/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ออเดอร์ทั้งหมด ใหม่สุดก่อน พร้อมรายการ
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ออเดอร์ในช่วงเวลา [from, to) ใหม่สุดก่อน
func (r *OrderRepository) ListBetween(from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// อัปเดตสถานะจ่ายเงินอย่างเดียว
func (r *OrderRepository) UpdatePaymentStatus(id uint, status entity.PaymentStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ?", id).
		Update("payment_status", status)
	return res.RowsAffected, res.Error
}
