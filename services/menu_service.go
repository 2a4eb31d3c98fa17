// services/menu_service.go
package services

import (
	"errors"
	"strings"

	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/repository"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrBadPrice     = errors.New("price must be positive")
	ErrBadCategory  = errors.New("category must be drinks or food")
	ErrMenuNotFound = errors.New("menu item not found")
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.ListAvailable()
}

func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	return s.Repo.ListAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

type CreateMenuItemIn struct {
	Name        string          `json:"name"`
	Price       int64           `json:"price"`
	Image       string          `json:"image"`
	Category    entity.Category `json:"category"`
	Description string          `json:"description"`
}

func (s *MenuService) Create(in *CreateMenuItemIn) (*entity.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Price <= 0 {
		return nil, ErrBadPrice
	}

	category := in.Category
	if category == "" {
		category = entity.CategoryDrinks
	}
	if !category.Valid() {
		return nil, ErrBadCategory
	}

	image := in.Image
	if image == "" {
		image = entity.PlaceholderImage
	}

	item := &entity.MenuItem{
		Name:        name,
		Price:       in.Price,
		Image:       image,
		Category:    category,
		Description: in.Description,
		Available:   true,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItemIn: field ไหนไม่ส่งมา (nil) = ไม่แตะ
type UpdateMenuItemIn struct {
	Name        *string          `json:"name"`
	Price       *int64           `json:"price"`
	Image       *string          `json:"image"`
	Category    *entity.Category `json:"category"`
	Description *string          `json:"description"`
	Available   *bool            `json:"available"`
}

func (s *MenuService) Update(id uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	fields := map[string]interface{}{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		fields["name"] = name
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, ErrBadPrice
		}
		fields["price"] = *in.Price
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, ErrBadCategory
		}
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Available != nil {
		fields["available"] = *in.Available
	}

	if len(fields) > 0 {
		affected, err := s.Repo.UpdateFields(id, fields)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, ErrMenuNotFound
		}
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	affected, err := s.Repo.UpdateFields(id, map[string]interface{}{"available": available})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// ลบเมนู - ออเดอร์เก่าไม่กระทบเพราะ order item เป็น snapshot
func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuNotFound
	}
	return nil
}
