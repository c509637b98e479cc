package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"StoreHub/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders  map[uint]*models.Order
	created []*models.Order
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[uint]*models.Order{}}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = uint(len(r.orders) + 1)
	r.orders[order.ID] = order
	r.created = append(r.created, order)
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) FindAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	order.Status = status
	return order, nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	delete(r.orders, id)
	return nil
}

func doOrderRequest(handler echo.HandlerFunc, user *models.User, method, target, body string, params ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	c.Set("user", user)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGetOrderAsOwner(t *testing.T) {
	repo := newFakeOrderRepo(&models.Order{ID: 5, UserID: 1, Status: models.OrderStatusPending})
	ctrl := NewOrderController(repo)

	rec := doOrderRequest(ctrl.Get, &models.User{ID: 1}, http.MethodGet, "/api/orders/5", "", "id", "5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestGetOrderDeniedForOtherUser(t *testing.T) {
	repo := newFakeOrderRepo(&models.Order{ID: 5, UserID: 1, Status: models.OrderStatusPending})
	ctrl := NewOrderController(repo)

	rec := doOrderRequest(ctrl.Get, &models.User{ID: 2}, http.MethodGet, "/api/orders/5", "", "id", "5")

	// Another user's order: forbidden, nothing about it leaks.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"user_id"`)
}

func TestGetOrderAllowedForAdmin(t *testing.T) {
	repo := newFakeOrderRepo(&models.Order{ID: 5, UserID: 1, Status: models.OrderStatusPending})
	ctrl := NewOrderController(repo)

	rec := doOrderRequest(ctrl.Get, &models.User{ID: 2, IsAdmin: true}, http.MethodGet, "/api/orders/5", "", "id", "5")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	ctrl := NewOrderController(repo)

	rec := doOrderRequest(ctrl.Create, &models.User{ID: 1}, http.MethodPost, "/api/orders",
		`{"products":[{"product_id":3,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(1), repo.created[0].UserID)
	assert.Equal(t, models.OrderStatusPending, repo.created[0].Status)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	repo := newFakeOrderRepo()
	ctrl := NewOrderController(repo)

	for _, body := range []string{
		`{"products":[{"product_id":3,"quantity":0}]}`,
		`{"products":[{"product_id":3,"quantity":-1}]}`,
		`{"products":[{"product_id":3,"quantity":2},{"product_id":4,"quantity":0}]}`,
	} {
		rec := doOrderRequest(ctrl.Create, &models.User{ID: 1}, http.MethodPost, "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, repo.created)
}

func TestCreateOrderRejectsEmptyProducts(t *testing.T) {
	repo := newFakeOrderRepo()
	ctrl := NewOrderController(repo)

	rec := doOrderRequest(ctrl.Create, &models.User{ID: 1}, http.MethodPost, "/api/orders", `{"products":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.created)
}
