package models

type Supplier struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;not null"`
	ContactEmail string `json:"contact_email" gorm:"uniqueIndex"`
	PhoneNumber  string `json:"phone_number" gorm:"uniqueIndex"`

	Products []Product `json:"-" gorm:"foreignKey:SupplierID"`
}
