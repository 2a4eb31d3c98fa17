package controllers

import (
	"errors"
	"strconv"

	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/services"
	"github.com/waritsara2543/food-ordering/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sess := utils.CurrentSession(c)

	view, err := h.Svc.Get(sess.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(sess.ID, req.MenuItemID); err != nil {
		switch {
		case errors.Is(err, services.ErrMenuNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMenuUnavailable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	view, err := h.Svc.Get(sess.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:menuItemId - ลดทีละ 1, เหลือ 1 แล้วลบทั้งแถว
func (h *CartController) Remove(c *gin.Context) {
	sess := utils.CurrentSession(c)
	id, _ := strconv.Atoi(c.Param("menuItemId"))

	if err := h.Svc.Remove(sess.ID, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}

	view, err := h.Svc.Get(sess.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// PUT /cart/items/:menuItemId - ตั้งจำนวนตรง ๆ (0 = เอาออก)
func (h *CartController) SetQty(c *gin.Context) {
	sess := utils.CurrentSession(c)
	id, _ := strconv.Atoi(c.Param("menuItemId"))

	var req struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetQty(sess.ID, uint(id), *req.Qty); err != nil {
		if errors.Is(err, services.ErrBadQty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	view, err := h.Svc.Get(sess.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	sess := utils.CurrentSession(c)

	if err := h.Svc.Clear(sess.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
