package repositories

import (
	"StoreHub/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	FindByID(id uint) (*models.Supplier, error)
	FindAll() ([]models.Supplier, error)
	Update(supplier *models.Supplier) error
	Delete(id uint) error
	SearchByName(query string) ([]models.Supplier, error)
}

type supplierRepositoryImpl struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepositoryImpl{db: db}
}

func (r *supplierRepositoryImpl) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepositoryImpl) FindByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepositoryImpl) FindAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepositoryImpl) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Supplier{}, id).Error
}

func (r *supplierRepositoryImpl) SearchByName(query string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Where("name ILIKE ?", "%"+query+"%").Find(&suppliers).Error
	return suppliers, err
}
