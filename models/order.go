package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// allowedTransitions memetakan status ke daftar status berikutnya yang sah.
// COMPLETED dan CANCELLED adalah terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing},
	StatusPreparing: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition memeriksa apakah perpindahan status diizinkan.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal -> true untuk COMPLETED / CANCELLED.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TableID      uint        `gorm:"not null;index" json:"table_id"`
	Table        Table       `gorm:"foreignKey:TableID" json:"-"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	TotalAmount  int64       `gorm:"not null" json:"total_amount"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	OrderItems   []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
