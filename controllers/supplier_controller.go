package controllers

import (
	"net/http"

	"StoreHub/models"
	"StoreHub/repositories"

	"github.com/labstack/echo/v4"
)

type SupplierController struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierController(supplierRepo repositories.SupplierRepository) *SupplierController {
	return &SupplierController{supplierRepo: supplierRepo}
}

func (s *SupplierController) Create(c echo.Context) error {
	var supplier models.Supplier
	if err := c.Bind(&supplier); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}
	supplier.ID = 0

	if err := s.supplierRepo.Create(&supplier); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

func (s *SupplierController) List(c echo.Context) error {
	suppliers, err := s.supplierRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

func (s *SupplierController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	var req struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contact_email"`
		PhoneNumber  string `json:"phone_number"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return err
	}
	supplier.Name = req.Name
	supplier.ContactEmail = req.ContactEmail
	supplier.PhoneNumber = req.PhoneNumber

	if err := s.supplierRepo.Update(supplier); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

func (s *SupplierController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.supplierRepo.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
