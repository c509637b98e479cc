package services

import (
	"context"

	"StoreHub/models"
	"StoreHub/repositories"

	"golang.org/x/sync/errgroup"
)

type SearchResult struct {
	Products  []models.Product  `json:"products"`
	Suppliers []models.Supplier `json:"suppliers"`
}

type SearchService struct {
	productRepo  repositories.ProductRepository
	supplierRepo repositories.SupplierRepository
}

func NewSearchService(productRepo repositories.ProductRepository, supplierRepo repositories.SupplierRepository) *SearchService {
	return &SearchService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *SearchService) SearchProducts(query string) ([]models.Product, error) {
	return s.productRepo.SearchByName(query)
}

func (s *SearchService) SearchSuppliers(query string) ([]models.Supplier, error) {
	return s.supplierRepo.SearchByName(query)
}

// Search runs the product and supplier lookups concurrently.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	result := &SearchResult{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := s.productRepo.SearchByName(query)
		if err != nil {
			return err
		}
		result.Products = products
		return nil
	})
	g.Go(func() error {
		suppliers, err := s.supplierRepo.SearchByName(query)
		if err != nil {
			return err
		}
		result.Suppliers = suppliers
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
