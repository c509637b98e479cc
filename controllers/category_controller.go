package controllers

import (
	"net/http"

	"StoreHub/models"
	"StoreHub/repositories"

	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryController(categoryRepo repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categoryRepo: categoryRepo}
}

func (ct *CategoryController) Create(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}
	category.ID = 0

	if err := ct.categoryRepo.Create(&category); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (ct *CategoryController) List(c echo.Context) error {
	categories, err := ct.categoryRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (ct *CategoryController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	category, err := ct.categoryRepo.FindByID(id)
	if err != nil {
		return err
	}
	category.Name = req.Name
	category.Description = req.Description

	if err := ct.categoryRepo.Update(category); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (ct *CategoryController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	if _, err := ct.categoryRepo.FindByID(id); err != nil {
		return err
	}
	if err := ct.categoryRepo.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
