package models

import (
	"time"
)

const OrderStatusPending = "Pending"

type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	OrderDate time.Time `json:"order_date" gorm:"autoCreateTime;index"`
	Status    string    `json:"status" gorm:"not null;default:Pending;index"`

	User     User           `json:"-" gorm:"foreignKey:UserID"`
	Products []OrderProduct `json:"products" gorm:"foreignKey:OrderID"`
}

// OrderProduct is one line item of an order.
type OrderProduct struct {
	OrderID   uint `json:"-" gorm:"primaryKey"`
	ProductID uint `json:"product_id" gorm:"primaryKey"`
	Quantity  int  `json:"quantity" gorm:"not null;default:0"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}
