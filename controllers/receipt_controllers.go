package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type ReceiptController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewReceiptController(db *gorm.DB) *ReceiptController {
	return &ReceiptController{DB: db, Orders: services.NewOrderService(db)}
}

// Layout struk thermal 80mm, siap dicetak dari dialog print browser.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hóa đơn #{{.Order.ID}}</title>
<style>
  body { width: 80mm; margin: 0 auto; font-family: monospace; font-size: 12px; }
  .center { text-align: center; }
  .row { display: flex; justify-content: space-between; }
  hr { border: none; border-top: 1px dashed #000; }
  @media print { body { width: 80mm; } }
</style>
</head>
<body onload="window.print()">
  <div class="center">
    <h3>{{.Settings.RestaurantName}}</h3>
    <div>{{.Settings.Address}}</div>
    <div>ĐT: {{.Settings.Phone}}</div>
  </div>
  <hr>
  <div class="row"><span>Hóa đơn:</span><span>#{{.Order.ID}}</span></div>
  <div class="row"><span>Bàn:</span><span>{{.TableName}}</span></div>
  <div class="row"><span>Khách:</span><span>{{.Order.CustomerName}}</span></div>
  <div class="row"><span>Thời gian:</span><span>{{.Timestamp}}</span></div>
  <hr>
  {{range .Lines}}
  <div class="row"><span>{{.Name}} x{{.Quantity}}</span><span>{{.Total}}</span></div>
  {{end}}
  <hr>
  <div class="row"><strong>Tổng cộng:</strong><strong>{{.Total}}</strong></div>
  <div class="center"><p>Cảm ơn quý khách!</p></div>
</body>
</html>`))

type receiptLine struct {
	Name     string
	Quantity int
	Total    string
}

// GetOrderReceipt merender struk HTML satu order. Header diisi dari baris
// settings; item diambil dari snapshot order, bukan katalog produk.
func (rc *ReceiptController) GetOrderReceipt(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := rc.Orders.GetOrder(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	setting := models.DefaultSetting()
	rc.DB.First(&setting, "id = ?", models.SettingID)

	var table models.Table
	rc.DB.First(&table, order.TableID)

	lines := make([]receiptLine, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		lines = append(lines, receiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    utils.FormatCurrencyVND(item.Price * int64(item.Quantity)),
		})
	}

	view := gin.H{
		"Settings":  setting,
		"Order":     order,
		"TableName": table.Name,
		"Timestamp": order.CreatedAt.Format("02/01/2006 15:04"),
		"Lines":     lines,
		"Total":     utils.FormatCurrencyVND(order.TotalAmount),
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := receiptTemplate.Execute(c.Writer, view); err != nil {
		utils.ErrorLogger.Printf("failed to render receipt for order %d: %v", id, err)
	}
}
