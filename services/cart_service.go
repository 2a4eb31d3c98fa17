// services/cart_service.go
package services

import (
	"errors"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"

	"gorm.io/gorm"
)

var (
	ErrMenuUnavailable = errors.New("menu item is not available")
	ErrBadQty          = errors.New("qty must not be negative")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartView struct {
	Items     []entity.CartItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"itemCount"`
}

func (s *CartService) Get(sessionID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(sessionID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: c.Items}
	if view.Items == nil {
		view.Items = []entity.CartItem{}
	}
	for _, it := range c.Items {
		view.Total += it.Price * int64(it.Qty)
		view.ItemCount += it.Qty
	}
	return view, nil
}

// Add: มีอยู่แล้ว -> +1, ยังไม่มี -> ใส่ใหม่ qty 1 พร้อม snapshot ราคา/ชื่อ ณ ตอนนี้
func (s *CartService) Add(sessionID, menuItemID uint) error {
	m, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}
	if !m.Available {
		return ErrMenuUnavailable
	}

	c, err := s.CartRepo.GetOrCreateCart(sessionID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		exist, err := s.CartRepo.FindItem(c.ID, m.ID)
		if err == nil {
			exist.Qty++
			return s.CartRepo.SaveItem(tx, exist)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		line := &entity.CartItem{
			CartID:     c.ID,
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Image:      m.Image,
			Category:   m.Category,
			Qty:        1,
		}
		return s.CartRepo.CreateItem(tx, line)
	})
}

// Remove: qty > 1 -> -1, qty == 1 -> ลบทั้งรายการ, ไม่อยู่ในตะกร้า -> เฉย ๆ
func (s *CartService) Remove(sessionID, menuItemID uint) error {
	c, err := s.CartRepo.GetCartWithItems(sessionID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return nil
	}

	exist, err := s.CartRepo.FindItem(c.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if exist.Qty > 1 {
			exist.Qty--
			return s.CartRepo.SaveItem(tx, exist)
		}
		return s.CartRepo.DeleteItem(tx, exist.ID)
	})
}

// SetQty: 0 -> ลบ, อื่น ๆ -> แทนค่า
func (s *CartService) SetQty(sessionID, menuItemID uint, qty int) error {
	if qty < 0 {
		return ErrBadQty
	}

	c, err := s.CartRepo.GetCartWithItems(sessionID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return nil
	}

	exist, err := s.CartRepo.FindItem(c.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if qty == 0 {
			return s.CartRepo.DeleteItem(tx, exist.ID)
		}
		exist.Qty = qty
		return s.CartRepo.SaveItem(tx, exist)
	})
}

func (s *CartService) Clear(sessionID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, sessionID)
	})
}
