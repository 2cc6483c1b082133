package models

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Staff adalah akun pegawai. Role hanya dipakai untuk badge di dashboard,
// bukan untuk pembatasan akses.
type Staff struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(100);unique;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'STAFF'" json:"role"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	AvatarURL    string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
