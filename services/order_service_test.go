package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
)

func setupOrderServiceDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open("file:ordersvctest?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Table{}, &models.Order{}, &models.OrderItem{}, &models.ActionLog{}))

	db.Where("1 = 1").Delete(&models.OrderItem{})
	db.Where("1 = 1").Delete(&models.Order{})
	db.Where("1 = 1").Delete(&models.Table{})
	db.Where("1 = 1").Delete(&models.ActionLog{})

	db.Create(&models.Table{Name: "Bàn 1"})
	return db
}

func cartFixture() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, Name: "Phở bò", Price: 50000, Quantity: 2},
		{ProductID: 2, Name: "Trà đá", Price: 30000, Quantity: 1},
	}
}

func TestCreateOrderIsAtomic(t *testing.T) {
	db := setupOrderServiceDB(t)
	svc := NewOrderService(db)

	// Meja tidak ada: tidak boleh ada order ataupun item tertinggal
	_, err := svc.CreateOrder(99, "Minh", cartFixture())
	assert.ErrorIs(t, err, ErrTableNotFound)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), itemCount)

	order, err := svc.CreateOrder(1, "Minh", cartFixture())
	assert.NoError(t, err)
	assert.Equal(t, int64(130000), order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := setupOrderServiceDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(1, "Minh", nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusPreparing, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusPreparing, true},
		{models.StatusConfirmed, models.StatusCancelled, false},
		{models.StatusPreparing, models.StatusCompleted, true},
		{models.StatusPreparing, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCancelled, models.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}

	assert.True(t, models.StatusCompleted.IsTerminal())
	assert.True(t, models.StatusCancelled.IsTerminal())
	assert.False(t, models.StatusPreparing.IsTerminal())
}

func TestCompletedClearsTableCancelledDoesNot(t *testing.T) {
	db := setupOrderServiceDB(t)
	svc := NewOrderService(db)

	// Jalur selesai: meja dikosongkan otomatis
	order, err := svc.CreateOrder(1, "Minh", cartFixture())
	assert.NoError(t, err)
	for _, next := range []models.OrderStatus{
		models.StatusConfirmed, models.StatusPreparing, models.StatusCompleted,
	} {
		_, err = svc.UpdateOrderStatus(order.ID, next, "Tester")
		assert.NoError(t, err)
	}

	var table models.Table
	db.First(&table, 1)
	assert.False(t, table.IsOccupied)

	// Jalur hủy: meja tetap occupied, staff bereskan manual
	order, err = svc.CreateOrder(1, "Minh", cartFixture())
	assert.NoError(t, err)
	_, err = svc.UpdateOrderStatus(order.ID, models.StatusCancelled, "Tester")
	assert.NoError(t, err)

	db.First(&table, 1)
	assert.True(t, table.IsOccupied)
}

func TestUpdateOrderStatusFailsClosed(t *testing.T) {
	db := setupOrderServiceDB(t)
	svc := NewOrderService(db)

	order, err := svc.CreateOrder(1, "Minh", cartFixture())
	assert.NoError(t, err)

	_, err = svc.UpdateOrderStatus(order.ID, "SHIPPED", "Tester")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateOrderStatus(order.ID, models.StatusCompleted, "Tester")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// Status tersimpan tidak berubah setelah dua penolakan
	stored, err := svc.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	// Penolakan tidak menulis audit log order
	var logs []models.ActionLog
	db.Where("action = ?", ActionOrderUpdate).Find(&logs)
	assert.Empty(t, logs)
}
