package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB    *gorm.DB
	Audit *services.AuditService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Audit: services.NewAuditService(db)}
}

// GetAllCategories -> urut menurut display order, untuk tab menu customer
// dan dashboard.
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("display_order ASC").Find(&categories).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch categories: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of categories", []models.Category{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

func (cc *CategoryController) SaveCategory(c *gin.Context) {
	var body struct {
		ID           uint   `json:"id"`
		Name         string `json:"name" binding:"required"`
		DisplayOrder int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		ID:           body.ID,
		Name:         body.Name,
		DisplayOrder: body.DisplayOrder,
	}
	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Audit.AddLog(services.ActionCategoryManage,
		fmt.Sprintf("Lưu danh mục: %s", category.Name), actorName(c, cc.DB))
	utils.RespondJSON(c, http.StatusOK, "Category saved", category)
}

// DeleteCategory menghapus kategori saja. Produk yang masih menunjuk nama
// kategori itu dibiarkan; referensinya jadi yatim dan tampil apa adanya.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("category_id"))

	if err := cc.DB.Delete(&models.Category{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.Audit.AddLog(services.ActionCategoryManage,
		fmt.Sprintf("Xóa danh mục ID: %d", id), actorName(c, cc.DB))
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}
