package routes

import (
	"github.com/waritsara2543/food-ordering/configs"
	"github.com/waritsara2543/food-ordering/controllers"
	"github.com/waritsara2543/food-ordering/middlewares"
	"github.com/waritsara2543/food-ordering/repository"
	"github.com/waritsara2543/food-ordering/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	sessRepo := repository.NewSessionRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(db, orderRepo, cartRepo, sessRepo)
	orderSvc := services.NewOrderService(orderRepo)
	exportSvc := services.NewExportService(orderSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, exportSvc)
	sessCtrl := controllers.NewSessionController(sessRepo)

	// Public
	r.GET("/menu", menuCtrl.List)
	r.POST("/auth/login", authCtrl.Login)

	// ฝั่งลูกค้า - ทุก endpoint ผูกกับ session token
	s := r.Group("/", middlewares.SessionMiddleware(db))
	{
		s.GET("/cart", cartCtrl.Get)
		s.POST("/cart/items", cartCtrl.Add)
		s.PUT("/cart/items/:menuItemId", cartCtrl.SetQty)
		s.DELETE("/cart/items/:menuItemId", cartCtrl.Remove)
		s.DELETE("/cart", cartCtrl.Clear)

		s.POST("/checkout/slip", checkoutCtrl.StageSlip)
		s.DELETE("/checkout/slip", checkoutCtrl.CancelSlip)
		s.POST("/checkout", checkoutCtrl.Submit)
		s.GET("/checkout/order", checkoutCtrl.CompletedOrder)
		s.POST("/checkout/reset", checkoutCtrl.Reset)

		s.GET("/announcement", sessCtrl.Announcement)
		s.POST("/announcement/dismiss", sessCtrl.DismissAnnouncement)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/today", orderCtrl.Today)
		admin.PATCH("/orders/:id/approve", orderCtrl.Approve)
		admin.PATCH("/orders/:id/reject", orderCtrl.Reject)
		admin.GET("/orders/export", orderCtrl.ExportCSV)
		admin.GET("/orders/export.xlsx", orderCtrl.ExportXLSX)

		admin.GET("/menu", menuCtrl.ListAll)
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id", menuCtrl.Update)
		admin.PATCH("/menu/:id/availability", menuCtrl.UpdateAvailability)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
	}
}
