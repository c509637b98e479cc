package controllers

import (
	"net/http"

	"StoreHub/middlewares"
	"StoreHub/models"
	"StoreHub/repositories"

	"github.com/labstack/echo/v4"
)

type OrderController struct {
	orderRepo repositories.OrderRepository
}

func NewOrderController(orderRepo repositories.OrderRepository) *OrderController {
	return &OrderController{orderRepo: orderRepo}
}

// Create places an order for the authenticated user from a list of line
// items. Order and items are written in one transaction.
func (o *OrderController) Create(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		Products []struct {
			ProductID uint `json:"product_id"`
			Quantity  int  `json:"quantity"`
		} `json:"products"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}
	if len(req.Products) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "order needs at least one product"})
	}
	for _, item := range req.Products {
		if item.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "quantity must be positive"})
		}
	}

	order := models.Order{
		UserID: user.ID,
		Status: models.OrderStatusPending,
	}
	for _, item := range req.Products {
		order.Products = append(order.Products, models.OrderProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := o.orderRepo.Create(&order); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

func (o *OrderController) List(c echo.Context) error {
	orders, err := o.orderRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns one order. Non-admins only see their own.
func (o *OrderController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	order, err := o.orderRepo.FindByID(id)
	if err != nil {
		return err
	}

	user := middlewares.CurrentUser(c)
	if order.UserID != user.ID && !user.IsAdmin {
		return c.JSON(http.StatusForbidden, map[string]interface{}{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, order)
}

func (o *OrderController) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	order, err := o.orderRepo.UpdateStatus(id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (o *OrderController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid id"})
	}

	if _, err := o.orderRepo.FindByID(id); err != nil {
		return err
	}
	if err := o.orderRepo.Delete(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
