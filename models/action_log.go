package models

import "time"

// ActionLog bersifat append-only; aplikasi tidak pernah mengubah atau
// menghapus baris log.
type ActionLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	User      string    `gorm:"type:varchar(255);not null" json:"user"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
