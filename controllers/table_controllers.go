package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"github.com/vuminhtri/qr-dine/config"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("id ASC").Find(&tables).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch tables: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of tables", []models.Table{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) SaveTable(c *gin.Context) {
	var body struct {
		ID   uint   `json:"id"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{ID: body.ID, Name: body.Name}
	if body.ID != 0 {
		// Update nama saja; flag occupied tidak ikut tertimpa.
		var existing models.Table
		if err := tc.DB.First(&existing, body.ID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		existing.Name = body.Name
		table = existing
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table saved", table)
}

// UpdateTableStatus dipakai staff untuk membereskan meja secara manual,
// termasuk setelah order CANCELLED.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("table_id"))

	var body struct {
		IsOccupied *bool `json:"is_occupied" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := tc.DB.Model(&table).Update("is_occupied", *body.IsOccupied).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("table_id"))

	if err := tc.DB.Delete(&models.Table{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"table_id": id})
}

// GetTableQRCode -> PNG berisi URL halaman customer untuk meja ini.
// Dipakai dashboard untuk cetak kode QR per meja.
func (tc *TableController) GetTableQRCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("table_id"))

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	payload := fmt.Sprintf("%s/?table=%d", config.PublicBaseURL(), table.ID)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=table-%d.png", table.ID))
	c.Data(http.StatusOK, "image/png", png)
}
