// services/checkout_service.go
package services

import (
	"errors"
	"strings"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"
	"github.com/waritsara2543/food-ordering/utils"

	"gorm.io/gorm"
)

var (
	ErrNameMissing      = errors.New("customer name is required")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrSlipMissing      = errors.New("payment slip is required")
	ErrAlreadySubmitted = errors.New("order already submitted")
	ErrNoCompletedOrder = errors.New("no completed order in this session")
)

// CheckoutService คุม state ของ flow สั่งซื้อ:
// filling -> awaiting_payment (stage สลิป) -> submitting -> completed
// submit พลาด -> กลับ awaiting_payment โดยไม่มีอะไร commit
type CheckoutService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
	SessRepo  *repository.SessionRepository
}

func NewCheckoutService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	sessRepo *repository.SessionRepository,
) *CheckoutService {
	return &CheckoutService{DB: db, OrderRepo: orderRepo, CartRepo: cartRepo, SessRepo: sessRepo}
}

// StageSlip เก็บสลิป (data URL) ไว้บน session ก่อน ยังไม่เขียนออเดอร์
func (s *CheckoutService) StageSlip(sess *entity.Session, slip string) error {
	if _, err := utils.ValidateImageDataURL(slip); err != nil {
		return err
	}

	cart, err := s.CartRepo.GetCartWithItems(sess.ID)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return ErrCartEmpty
	}

	sess.SlipData = slip
	sess.CheckoutState = entity.CheckoutAwaitingPayment
	return s.SessRepo.Save(sess)
}

// CancelSlip = ลูกค้าถอยจากหน้าจ่ายเงิน ทิ้งสลิปที่ stage ไว้
func (s *CheckoutService) CancelSlip(sess *entity.Session) error {
	sess.SlipData = ""
	sess.CheckoutState = entity.CheckoutFilling
	return s.SessRepo.Save(sess)
}

type SubmitOrderIn struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// Submit สร้างออเดอร์จาก snapshot ในตะกร้า
// ตรวจทุกอย่างก่อนแตะ DB แล้วเขียน order + items + ล้างตะกร้า ใน transaction เดียว
func (s *CheckoutService) Submit(sess *entity.Session, in *SubmitOrderIn) (*entity.Order, error) {
	// กดซ้ำหลังจบไปแล้ว ต้อง reset หรือ stage สลิปใหม่ก่อน
	if sess.CheckoutState == entity.CheckoutCompleted {
		return nil, ErrAlreadySubmitted
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, ErrNameMissing
	}

	cart, err := s.CartRepo.GetCartWithItems(sess.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if sess.SlipData == "" {
		return nil, ErrSlipMissing
	}

	var total int64
	for _, it := range cart.Items {
		total += it.Price * int64(it.Qty)
	}

	slip := sess.SlipData
	prevOrderID := sess.LastOrderID
	sess.CheckoutState = entity.CheckoutSubmitting

	order := entity.Order{
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Total:         total,
		PaymentSlip:   slip,
		PaymentStatus: entity.PaymentPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:       order.ID,
				MenuItemID:    it.MenuItemID,
				MenuItemName:  it.Name,
				MenuItemPrice: it.Price,
				Quantity:      it.Qty,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		if err := s.CartRepo.ClearCart(tx, sess.ID); err != nil {
			return err
		}

		sess.SlipData = ""
		sess.CheckoutState = entity.CheckoutCompleted
		sess.LastOrderID = order.ID
		return s.SessRepo.SaveTx(tx, sess)
	})
	if err != nil {
		// rollback แล้ว - คืน session กลับไปรอสลิปเหมือนเดิม
		sess.SlipData = slip
		sess.CheckoutState = entity.CheckoutAwaitingPayment
		sess.LastOrderID = prevOrderID
		if saveErr := s.SessRepo.Save(sess); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	return &order, nil
}

// CompletedOrder อ่านใบเสร็จของออเดอร์ที่เพิ่งจบ
func (s *CheckoutService) CompletedOrder(sess *entity.Session) (*entity.Order, error) {
	if sess.CheckoutState != entity.CheckoutCompleted || sess.LastOrderID == 0 {
		return nil, ErrNoCompletedOrder
	}
	return s.OrderRepo.FindByID(sess.LastOrderID)
}

// Reset กลับไปเริ่มสั่งใหม่ด้วยตะกร้าว่าง
func (s *CheckoutService) Reset(sess *entity.Session) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.CartRepo.ClearCart(tx, sess.ID); err != nil {
			return err
		}
		sess.SlipData = ""
		sess.CheckoutState = entity.CheckoutFilling
		sess.LastOrderID = 0
		return s.SessRepo.SaveTx(tx, sess)
	})
}
