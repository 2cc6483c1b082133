package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTableNotFound     = errors.New("table not found")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

type OrderService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db, Audit: NewAuditService(db)}
}

// CreateOrder membuat order baru dalam satu transaksi: baris order, semua
// item, dan flag occupied meja. Tidak ada order setengah jadi yang bisa
// tertinggal kalau salah satu langkah gagal.
//
// Total dihitung di server dari snapshot item, bukan diterima dari client.
func (svc *OrderService) CreateOrder(tableID uint, customerName string, items []models.CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.Order
	err := svc.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			return ErrTableNotFound
		}

		var total int64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			total += item.Price * int64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Note:      item.Note,
				Category:  item.Category,
			})
		}

		order = models.Order{
			TableID:      tableID,
			CustomerName: customerName,
			TotalAmount:  total,
			Status:       models.StatusPending,
			OrderItems:   orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Meja selalu jadi occupied setelah order masuk.
		table.IsOccupied = true
		table.UpdatedAt = time.Now()
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d created for table %d (total=%s)",
		order.ID, tableID, utils.FormatCurrencyVND(order.TotalAmount))
	return &order, nil
}

// UpdateOrderStatus menulis status baru hanya jika transisinya sah menurut
// tabel transisi; tulisan ilegal ditolak di sini, bukan diserahkan ke UI.
// Transisi ke COMPLETED sekaligus mengosongkan meja; CANCELLED tidak
// (meja dibereskan manual oleh staff).
func (svc *OrderService) UpdateOrderStatus(orderID uint, next models.OrderStatus, actor string) (*models.Order, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	err := svc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems").First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		if !order.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
		}

		order.Status = next
		order.UpdatedAt = time.Now()
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		if next == models.StatusCompleted {
			return tx.Model(&models.Table{}).
				Where("id = ?", order.TableID).
				Update("is_occupied", false).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.Audit.AddLog(ActionOrderUpdate,
		fmt.Sprintf("Đơn #%d -> %s", order.ID, next), actor)
	return &order, nil
}

// ListOrders -> semua order beserta item, terbaru dulu. Gagal baca
// menghasilkan slice kosong, error hanya dicatat ke log operasional.
func (svc *OrderService) ListOrders() []models.Order {
	var orders []models.Order
	if err := svc.DB.Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch orders: %v", err)
		return []models.Order{}
	}
	return orders
}

// ListOrdersForTable -> order satu meja, dipakai layar customer dan
// riwayat gọi món. customerName kosong berarti semua order meja itu.
func (svc *OrderService) ListOrdersForTable(tableID uint, customerName string) []models.Order {
	query := svc.DB.Preload("OrderItems").
		Where("table_id = ?", tableID).
		Order("created_at DESC")
	if customerName != "" {
		query = query.Where("customer_name = ?", customerName)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch orders for table %d: %v", tableID, err)
		return []models.Order{}
	}
	return orders
}

func (svc *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := svc.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}
