package controllers

import (
	"net/http"

	"StoreHub/services"

	"github.com/labstack/echo/v4"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

func (s *SearchController) Products(c echo.Context) error {
	query := c.QueryParam("q")
	products, err := s.searchService.SearchProducts(query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (s *SearchController) Suppliers(c echo.Context) error {
	query := c.QueryParam("q")
	suppliers, err := s.searchService.SearchSuppliers(query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// All searches products and suppliers in one call.
func (s *SearchController) All(c echo.Context) error {
	query := c.QueryParam("q")
	result, err := s.searchService.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
