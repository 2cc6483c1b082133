package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
)

func setupMonitorDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open("file:monitortest?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.DBChange{}, &models.Order{}, &models.OrderItem{}, &models.Table{}))

	db.Where("1 = 1").Delete(&models.DBChange{})
	db.Where("1 = 1").Delete(&models.Order{})
	return db
}

func TestCheckChangesMarksProcessed(t *testing.T) {
	db := setupMonitorDB(t)

	order := models.Order{TableID: 1, CustomerName: "Minh", Status: models.StatusPending}
	assert.NoError(t, db.Create(&order).Error)

	db.Create(&models.DBChange{
		TableName:  "orders",
		RecordID:   int64(order.ID),
		ActionType: "INSERT",
		ChangedAt:  time.Now(),
	})

	monitor := NewChangeMonitor(db)
	monitor.CheckChanges()

	var pending int64
	db.Model(&models.DBChange{}).Where("processed = ?", false).Count(&pending)
	assert.Equal(t, int64(0), pending)

	// Pemanggilan kedua tidak menemukan apa-apa dan tidak mengubah status
	monitor.CheckChanges()
	var processed int64
	db.Model(&models.DBChange{}).Where("processed = ?", true).Count(&processed)
	assert.Equal(t, int64(1), processed)
}

func TestCheckChangesSkipsMissingRowsGracefully(t *testing.T) {
	db := setupMonitorDB(t)

	// Baris yang sudah terhapus sebelum sempat diproses
	db.Create(&models.DBChange{
		TableName:  "orders",
		RecordID:   9999,
		ActionType: "UPDATE",
		ChangedAt:  time.Now(),
	})

	monitor := NewChangeMonitor(db)
	assert.NotPanics(t, func() { monitor.CheckChanges() })

	var pending int64
	db.Model(&models.DBChange{}).Where("processed = ?", false).Count(&pending)
	assert.Equal(t, int64(0), pending)
}
