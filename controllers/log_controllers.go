package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type LogController struct {
	Audit *services.AuditService
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{Audit: services.NewAuditService(db)}
}

// GetLogs -> 100 baris audit terakhir untuk panel aktivitas dashboard.
func (lc *LogController) GetLogs(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Recent activity", lc.Audit.RecentLogs())
}
