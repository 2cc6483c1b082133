package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/session"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB       *gorm.DB
	Service  *services.OrderService
	Sessions *session.Store
}

func NewOrderController(db *gorm.DB, sessions *session.Store) *OrderController {
	return &OrderController{
		DB:       db,
		Service:  services.NewOrderService(db),
		Sessions: sessions,
	}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders := oc.Service.ListOrders()
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	order, err := oc.Service.GetOrder(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrdersByTable -> riwayat order satu meja, dipakai layar customer.
// ?customer=<tên> membatasi ke order milik satu nama.
func (oc *OrderController) GetOrdersByTable(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("table_id"))

	orders := oc.Service.ListOrdersForTable(uint(tableID), c.Query("customer"))
	utils.RespondJSON(c, http.StatusOK, "Orders for table", orders)
}

// CreateOrder menerima keranjang dari halaman customer. Setelah order
// tersimpan, sesi meja ditulis ulang: keranjang kosong, order tercatat.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID      uint              `json:"table_id" binding:"required"`
		CustomerName string            `json:"customer_name" binding:"required"`
		ClientKey    string            `json:"client_key"`
		Items        []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(body.TableID, body.CustomerName, body.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrTableNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	oc.Sessions.SaveTableSession(session.TableSession{
		TableID:       body.TableID,
		CustomerName:  body.CustomerName,
		IsJoined:      true,
		Cart:          []models.CartItem{},
		PlacedOrderID: order.ID,
	})
	oc.Sessions.SaveCustomerName(body.ClientKey, body.CustomerName)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrderStatus -> transisi status dari dashboard. Transisi ilegal
// dijawab 409, status tak dikenal 400.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var body struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateOrderStatus(uint(id), body.Status, actorName(c, oc.DB))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrIllegalTransition):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
