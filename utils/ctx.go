package utils

import (
	"github.com/waritsara2543/food-ordering/entity"

	"github.com/gin-gonic/gin"
)

func CurrentSession(c *gin.Context) *entity.Session {
	v, _ := c.Get("session")
	if s, ok := v.(*entity.Session); ok {
		return s
	}
	return nil
}
