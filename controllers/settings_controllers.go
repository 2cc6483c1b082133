package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB    *gorm.DB
	Audit *services.AuditService
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db, Audit: services.NewAuditService(db)}
}

// GetSettings -> baris settings tunggal; kalau belum ada atau gagal dibaca,
// kembalikan nilai default supaya halaman tetap hidup.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting, "id = ?", models.SettingID).Error; err != nil {
		utils.RespondJSON(c, http.StatusOK, "Settings", models.DefaultSetting())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", setting)
}

// SaveSettings menulis baris "system"; tidak pernah ada baris kedua.
// Baris yang sudah ada di-update (bukan insert ulang) supaya change feed
// menyiarkan event "updated", bukan "created".
func (sc *SettingsController) SaveSettings(c *gin.Context) {
	var body struct {
		RestaurantName string  `json:"restaurant_name" binding:"required"`
		Address        string  `json:"address"`
		Phone          string  `json:"phone"`
		WifiPass       string  `json:"wifi_pass"`
		TaxRate        float64 `json:"tax_rate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	setting := models.Setting{
		ID:             models.SettingID,
		RestaurantName: body.RestaurantName,
		Address:        body.Address,
		Phone:          body.Phone,
		WifiPass:       body.WifiPass,
		TaxRate:        body.TaxRate,
	}
	var existing models.Setting
	exists := sc.DB.Select("id").First(&existing, "id = ?", models.SettingID).Error == nil

	var err error
	if exists {
		err = sc.DB.Model(&models.Setting{ID: models.SettingID}).
			Select("restaurant_name", "address", "phone", "wifi_pass", "tax_rate").
			Updates(setting).Error
	} else {
		err = sc.DB.Create(&setting).Error
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sc.Audit.AddLog(services.ActionSettingsUpdate,
		"Cập nhật cấu hình hệ thống", actorName(c, sc.DB))
	utils.RespondJSON(c, http.StatusOK, "Settings saved", setting)
}
