// services/order_service.go
package services

import (
	"errors"
	"time"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService = ฝั่งแอดมินรีวิวออเดอร์/สลิป
type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

// TodayRange: เที่ยงคืนวันนี้ (เวลาท้องถิ่น) ถึงเที่ยงคืนพรุ่งนี้ แบบ half-open
func TodayRange(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}

func (s *OrderService) ListToday(now time.Time) ([]entity.Order, error) {
	from, to := TodayRange(now)
	return s.Repo.ListBetween(from, to)
}

type TodaySummary struct {
	Count   int   `json:"count"`
	Revenue int64 `json:"revenue"` // นับเฉพาะออเดอร์ที่อนุมัติแล้ว
}

func Summarize(orders []entity.Order) TodaySummary {
	sum := TodaySummary{Count: len(orders)}
	for _, o := range orders {
		if o.PaymentStatus == entity.PaymentApproved {
			sum.Revenue += o.Total
		}
	}
	return sum
}

// SetPaymentStatus: อัปเดตทับตรง ๆ ไม่มี guard - กดซ้ำตัวหลังชนะ ไม่เก็บประวัติ
func (s *OrderService) SetPaymentStatus(id uint, status entity.PaymentStatus) error {
	if status != entity.PaymentApproved && status != entity.PaymentRejected {
		return errors.New("status must be approved or rejected")
	}
	affected, err := s.Repo.UpdatePaymentStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) Approve(id uint) error {
	return s.SetPaymentStatus(id, entity.PaymentApproved)
}

func (s *OrderService) Reject(id uint) error {
	return s.SetPaymentStatus(id, entity.PaymentRejected)
}
