package models

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:text" json:"image"`
	// Category menyimpan nama kategori, bukan foreign key. Menghapus kategori
	// tidak mengubah produk yang masih memakai namanya.
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	Available bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
