package middlewares

import (
	"errors"
	"net/http"

	"github.com/waritsara2543/food-ordering/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionMiddleware โหลด session ของลูกค้าจาก X-Session-Token
// ไม่มี/ไม่เจอ -> ออก token ใหม่ แล้วส่งกลับใน header เดิมทุกครั้ง
func SessionMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")

		var sess entity.Session
		if token != "" {
			err := db.Where("token = ?", token).First(&sess).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
				c.Abort()
				return
			}
		}

		if sess.ID == 0 {
			sess = entity.Session{
				Token:         uuid.NewString(),
				CheckoutState: entity.CheckoutFilling,
			}
			if err := db.Create(&sess).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
				c.Abort()
				return
			}
		}

		c.Header("X-Session-Token", sess.Token)
		c.Set("session", &sess)
		c.Next()
	}
}
