package controllers

import (
	"net/http"
	"strings"

	"github.com/waritsara2543/food-ordering/configs"
	"github.com/waritsara2543/food-ordering/entity"
	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /auth/login (admin เท่านั้น - ลูกค้าไม่ต้องล็อกอิน)
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var admin entity.Admin
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&admin).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}
