package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check melakukan probe baca ringan ke tabel settings. Halaman depan
// memakai ini untuk menampilkan banner "belum terkonfigurasi" alih-alih
// gagal diam-diam.
func (hc *HealthController) Check(c *gin.Context) {
	var count int64
	err := hc.DB.Model(&models.Setting{}).Count(&count).Error

	connected := err == nil
	status := http.StatusOK
	if !connected {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"connected":  connected,
		"configured": connected && count > 0,
	})
}
