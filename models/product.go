package models

import (
	"time"
)

type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description,omitempty"`
	Price        int       `json:"price" gorm:"not null;default:0;index"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0"`
	CreationDate time.Time `json:"creation_date" gorm:"autoCreateTime"`
	CategoryID   uint      `json:"category_id" gorm:"not null;index"`
	SupplierID   uint      `json:"supplier_id" gorm:"not null;index"`

	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
	Supplier Supplier `json:"-" gorm:"foreignKey:SupplierID"`
}
