package models

import "time"

// OrderItem adalah snapshot produk saat order dibuat. Nama, harga, dan
// kategori disalin supaya perubahan produk di kemudian hari tidak mengubah
// riwayat order.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int64     `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Note      string    `gorm:"type:text" json:"note"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
