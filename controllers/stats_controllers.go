package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type StatsController struct {
	Orders *services.OrderService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{Orders: services.NewOrderService(db)}
}

// GetSalesStats menghitung agregat penjualan dari seluruh order saat
// dipanggil; tidak ada tabel statistik tersendiri.
func (sc *StatsController) GetSalesStats(c *gin.Context) {
	stats := services.ComputeSalesStats(sc.Orders.ListOrders())
	utils.RespondJSON(c, http.StatusOK, "Sales statistics", stats)
}
