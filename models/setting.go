package models

import "time"

// SettingID adalah kunci baris tunggal pengaturan sistem.
const SettingID = "system"

type Setting struct {
	ID             string    `gorm:"primaryKey;type:varchar(20)" json:"id"`
	RestaurantName string    `gorm:"type:varchar(255);not null" json:"restaurant_name"`
	Address        string    `gorm:"type:text" json:"address"`
	Phone          string    `gorm:"type:varchar(50)" json:"phone"`
	WifiPass       string    `gorm:"type:varchar(100)" json:"wifi_pass"`
	TaxRate        float64   `gorm:"not null;default:0" json:"tax_rate"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// DefaultSetting dipakai saat baris settings belum ada atau gagal dibaca.
func DefaultSetting() Setting {
	return Setting{
		ID:             SettingID,
		RestaurantName: "Nhà Hàng QR Dine",
		Address:        "123 Đường ABC, Quận 1, TP.HCM",
		Phone:          "0909 123 456",
		WifiPass:       "88888888",
		TaxRate:        8,
	}
}
