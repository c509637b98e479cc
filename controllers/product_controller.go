package controllers

import (
	"net/http"
	"strconv"

	"StoreHub/models"
	"StoreHub/repositories"

	"github.com/labstack/echo/v4"
)

type ProductController struct {
	productRepo repositories.ProductRepository
}

func NewProductController(productRepo repositories.ProductRepository) *ProductController {
	return &ProductController{productRepo: productRepo}
}

func (p *ProductController) Create(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       int    `json:"price"`
		Quantity    int    `json:"quantity"`
		CategoryID  uint   `json:"category_id"`
		SupplierID  uint   `json:"supplier_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
	}
	if err := p.productRepo.Create(&product); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (p *ProductController) List(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	products, err := p.productRepo.FindAll(limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Update applies a partial update: only fields present in the payload
// change.
func (p *ProductController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int    `json:"price"`
		Quantity    *int    `json:"quantity"`
		CategoryID  *uint   `json:"category_id"`
		SupplierID  *uint   `json:"supplier_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	product, err := p.productRepo.FindByID(id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}

	if err := p.productRepo.Update(product); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (p *ProductController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	if _, err := p.productRepo.FindByID(id); err != nil {
		return err
	}
	if err := p.productRepo.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
