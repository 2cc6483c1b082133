package services

import (
	"time"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/realtime"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

// ChangeMonitor membaca baris db_changes yang belum diproses secara periodik
// dan menyiarkannya sebagai event websocket per topik. Payload berisi baris
// yang berubah sehingga client bisa update incremental tanpa refetch penuh.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.CheckChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

// CheckChanges memproses maksimal 100 perubahan tertua yang belum diproses.
func (cm *ChangeMonitor) CheckChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()
	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Printf("change monitor: fetch failed: %v", err)
		return
	}

	for _, change := range changes {
		cm.dispatch(change)

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Printf("change monitor: mark processed failed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Printf("change monitor: commit failed: %v", err)
	}
}

func (cm *ChangeMonitor) dispatch(change models.DBChange) {
	event := eventFor(change.ActionType)

	switch change.TableName {
	case "orders":
		cm.dispatchOrder(change, event)
	case "order_items":
		// Item hanya berubah bersama ordernya; cukup segarkan topik order.
		realtime.Broadcast(event, map[string]interface{}{"id": change.RecordID}, realtime.TopicOrders)
	case "tables":
		cm.dispatchRow(change, event, &models.Table{}, realtime.TopicTables)
	case "products", "categories":
		cm.dispatchRow(change, event, rowModel(change.TableName), realtime.TopicMenu)
	case "staffs":
		cm.dispatchRow(change, event, &models.Staff{}, realtime.TopicStaff)
	case "settings":
		var setting models.Setting
		if err := cm.DB.First(&setting, "id = ?", models.SettingID).Error; err == nil {
			realtime.Broadcast(event, setting, realtime.TopicSettings)
		}
	case "action_logs":
		cm.dispatchRow(change, event, &models.ActionLog{}, realtime.TopicLogs)
	}
}

func (cm *ChangeMonitor) dispatchOrder(change models.DBChange, event string) {
	if change.ActionType == "DELETE" {
		realtime.Broadcast(event, map[string]interface{}{"id": change.RecordID}, realtime.TopicOrders)
		return
	}

	var order models.Order
	if err := cm.DB.Preload("OrderItems").First(&order, change.RecordID).Error; err != nil {
		utils.ErrorLogger.Printf("change monitor: fetch order %d: %v", change.RecordID, err)
		return
	}
	realtime.Broadcast(event, order,
		realtime.TopicOrders, realtime.OrderTopic(order.TableID))
}

// dispatchRow memuat baris yang berubah lalu menyiarkannya; untuk DELETE
// hanya id yang dikirim.
func (cm *ChangeMonitor) dispatchRow(change models.DBChange, event string, dest interface{}, topic string) {
	if change.ActionType == "DELETE" {
		realtime.Broadcast(event, map[string]interface{}{"id": change.RecordID}, topic)
		return
	}

	if err := cm.DB.First(dest, change.RecordID).Error; err != nil {
		utils.ErrorLogger.Printf("change monitor: fetch %s %d: %v",
			change.TableName, change.RecordID, err)
		return
	}
	realtime.Broadcast(event, dest, topic)
}

func rowModel(table string) interface{} {
	if table == "products" {
		return &models.Product{}
	}
	return &models.Category{}
}

func eventFor(action string) string {
	switch action {
	case "INSERT":
		return realtime.EventCreated
	case "DELETE":
		return realtime.EventDeleted
	default:
		return realtime.EventUpdated
	}
}
