package controllers

import (
	"github.com/waritsara2543/food-ordering/pkg/resp"
	"github.com/waritsara2543/food-ordering/repository"
	"github.com/waritsara2543/food-ordering/utils"

	"github.com/gin-gonic/gin"
)

// SessionController: ของเล็ก ๆ ที่ผูกกับ session เช่น ธงปิด announcement
type SessionController struct {
	Repo *repository.SessionRepository
}

func NewSessionController(repo *repository.SessionRepository) *SessionController {
	return &SessionController{Repo: repo}
}

// GET /announcement
func (sc *SessionController) Announcement(c *gin.Context) {
	sess := utils.CurrentSession(c)
	resp.OK(c, gin.H{"dismissed": sess.AnnouncementDismissed})
}

// POST /announcement/dismiss - ปิดครั้งเดียว ไม่ขึ้นอีก
func (sc *SessionController) DismissAnnouncement(c *gin.Context) {
	sess := utils.CurrentSession(c)

	sess.AnnouncementDismissed = true
	if err := sc.Repo.Save(sess); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"dismissed": true})
}
