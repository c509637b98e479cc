package repositories

import (
	"StoreHub/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order and its line items in one transaction.
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindAll() ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	Delete(id uint) error
}

type orderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepositoryImpl{db: db}
}

func (r *orderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := order.Products
		order.Products = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Products = items
		return nil
	})
}

func (r *orderRepositoryImpl) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Products").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepositoryImpl) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Products").Find(&orders).Error
	return orders, err
}

func (r *orderRepositoryImpl) UpdateStatus(id uint, status string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Products").First(&order, id).Error; err != nil {
		return nil, err
	}
	order.Status = status
	if err := r.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
