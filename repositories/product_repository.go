package repositories

import (
	"StoreHub/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id uint) (*models.Product, error)
	FindAll(limit, offset int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	SearchByName(query string) ([]models.Product, error)
}

type productRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (r *productRepositoryImpl) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepositoryImpl) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepositoryImpl) FindAll(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepositoryImpl) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepositoryImpl) SearchByName(query string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("name ILIKE ?", "%"+query+"%").Find(&products).Error
	return products, err
}
