package services

import (
	"time"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
)

// Label aksi mengikuti teks produk (bahasa Vietnam) supaya log lama dan
// baru tetap satu kosakata.
const (
	ActionLogin          = "Đăng nhập"
	ActionLogout         = "Đăng xuất"
	ActionProductCreate  = "Thêm món mới"
	ActionProductUpdate  = "Cập nhật món"
	ActionProductDelete  = "Xóa món"
	ActionCategoryManage = "Quản lý danh mục"
	ActionOrderUpdate    = "Cập nhật đơn hàng"
	ActionStaffManage    = "Quản lý nhân viên"
	ActionSettingsUpdate = "Cài đặt"

	SystemUser = "Hệ thống"
)

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// AddLog menulis tepat satu baris ActionLog. Setiap operasi tulis yang
// mengubah data bisnis wajib memanggil ini sekali.
func (as *AuditService) AddLog(action, details, user string) {
	if user == "" {
		user = SystemUser
	}

	entry := models.ActionLog{
		Action:    action,
		Details:   details,
		User:      user,
		Timestamp: time.Now(),
	}
	if err := as.DB.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("failed to write action log %q: %v", action, err)
	}
}

// RecentLogs mengembalikan maksimal 100 log terakhir, terbaru dulu.
// Gagal baca -> slice kosong, sesuai kontrak operasi baca.
func (as *AuditService) RecentLogs() []models.ActionLog {
	var logs []models.ActionLog
	if err := as.DB.Order("timestamp DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch logs: %v", err)
		return []models.ActionLog{}
	}
	return logs
}
