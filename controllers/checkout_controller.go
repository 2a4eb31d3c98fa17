package controllers

import (
	"errors"
	"log"

	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/services"
	"github.com/waritsara2543/food-ordering/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout/slip - stage สลิปไว้บน session ยังไม่เขียนออเดอร์
func (h *CheckoutController) StageSlip(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var req struct {
		Slip string `json:"slip" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.StageSlip(sess, req.Slip); err != nil {
		switch {
		case errors.Is(err, utils.ErrNotDataURL),
			errors.Is(err, utils.ErrNotImage),
			errors.Is(err, utils.ErrSlipTooLarge),
			errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"checkoutState": sess.CheckoutState})
}

// DELETE /checkout/slip - ลูกค้ายกเลิกจากหน้าจ่ายเงิน
func (h *CheckoutController) CancelSlip(c *gin.Context) {
	sess := utils.CurrentSession(c)

	if err := h.Svc.CancelSlip(sess); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"checkoutState": sess.CheckoutState})
}

// POST /checkout - สร้างออเดอร์จากตะกร้า + สลิปที่ stage ไว้
func (h *CheckoutController) Submit(c *gin.Context) {
	sess := utils.CurrentSession(c)

	var req services.SubmitOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Submit(sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameMissing),
			errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrSlipMissing):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAlreadySubmitted):
			resp.Conflict(c, err.Error())
		default:
			log.Printf("create order failed: %v", err)
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /checkout/order - ใบเสร็จของออเดอร์ที่เพิ่งจบ
func (h *CheckoutController) CompletedOrder(c *gin.Context) {
	sess := utils.CurrentSession(c)

	order, err := h.Svc.CompletedOrder(sess)
	if err != nil {
		if errors.Is(err, services.ErrNoCompletedOrder) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /checkout/reset - เริ่มสั่งรอบใหม่
func (h *CheckoutController) Reset(c *gin.Context) {
	sess := utils.CurrentSession(c)

	if err := h.Svc.Reset(sess); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"checkoutState": sess.CheckoutState})
}
