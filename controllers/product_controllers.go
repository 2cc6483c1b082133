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

type ProductController struct {
	DB    *gorm.DB
	Audit *services.AuditService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Audit: services.NewAuditService(db)}
}

// GetAllProducts -> daftar produk, terbaru dulu. ?available=true hanya
// produk yang tampil di menu customer.
func (pc *ProductController) GetAllProducts(c *gin.Context) {
	query := pc.DB.Order("created_at DESC")
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch products: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of products", []models.Product{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// SaveProduct -> buat atau perbarui produk; satu baris audit per panggilan.
func (pc *ProductController) SaveProduct(c *gin.Context) {
	var body struct {
		ID          uint   `json:"id"`
		Name        string `json:"name" binding:"required"`
		Price       int64  `json:"price"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Category    string `json:"category"`
		Available   *bool  `json:"available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	available := true
	if body.Available != nil {
		available = *body.Available
	}

	isNew := body.ID == 0
	product := models.Product{
		ID:          body.ID,
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
		Image:       body.Image,
		Category:    body.Category,
		Available:   available,
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	action := services.ActionProductUpdate
	if isNew {
		action = services.ActionProductCreate
	}
	pc.Audit.AddLog(action, fmt.Sprintf("Món: %s", product.Name), actorName(c, pc.DB))

	utils.RespondJSON(c, http.StatusOK, "Product saved", product)
}

// DeleteProduct menghapus produk; riwayat order tidak terpengaruh karena
// item order adalah snapshot.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	idStr := c.Param("product_id")
	id, _ := strconv.Atoi(idStr)

	if err := pc.DB.Delete(&models.Product{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.Audit.AddLog(services.ActionProductDelete, fmt.Sprintf("ID: %d", id), actorName(c, pc.DB))
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
