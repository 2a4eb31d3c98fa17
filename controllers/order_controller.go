package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/services"

	"github.com/gin-gonic/gin"
)

// OrderController = หน้ารีวิวออเดอร์ของแอดมิน
type OrderController struct {
	Svc    *services.OrderService
	Export *services.ExportService
}

func NewOrderController(svc *services.OrderService, export *services.ExportService) *OrderController {
	return &OrderController{Svc: svc, Export: export}
}

// GET /admin/orders - ทั้งหมด ใหม่สุดก่อน
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /admin/orders/today - ออเดอร์วันนี้ + สรุปยอด
func (oc *OrderController) Today(c *gin.Context) {
	orders, err := oc.Svc.ListToday(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"items":   orders,
		"summary": services.Summarize(orders),
	})
}

// PATCH /admin/orders/:id/approve
func (oc *OrderController) Approve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Approve(uint(id)); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment approved"})
}

// PATCH /admin/orders/:id/reject
func (oc *OrderController) Reject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Reject(uint(id)); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "payment rejected"})
}

// GET /admin/orders/export - CSV ของวันนี้
func (oc *OrderController) ExportCSV(c *gin.Context) {
	data, filename, err := oc.Export.TodayCSV(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GET /admin/orders/export.xlsx
func (oc *OrderController) ExportXLSX(c *gin.Context) {
	data, filename, err := oc.Export.TodayXLSX(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
