package controllers

import (
	"errors"
	"strconv"

	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu - ลูกค้าเห็นเฉพาะที่ available
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Svc.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/menu - ทั้งหมด รวมที่ปิดขาย
func (ctl *MenuController) ListAll(c *gin.Context) {
	items, err := ctl.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrBadPrice),
			errors.Is(err, services.ErrBadCategory):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuNotFound), errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		case errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrBadPrice),
			errors.Is(err, services.ErrBadCategory):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// PATCH /admin/menu/:id/availability
func (ctl *MenuController) UpdateAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.SetAvailability(uint(id), *req.Available); err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "availability updated"})
}

// DELETE /admin/menu/:id - ออเดอร์เก่าไม่กระทบ (snapshot)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
