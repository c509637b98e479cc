package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StoreHub/models"
	"StoreHub/repositories"
	"StoreHub/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func run(e *echo.Echo, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(okHandler)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c
}

func seedUser(t *testing.T, repo *repositories.MockUserRepository) *models.User {
	t.Helper()
	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		AuthProvider: models.ProviderLocal,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestRequireAuthWithBearerToken(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()
	user := seedUser(t, repo)

	token, err := utils.GenerateAccessToken(user.Email, user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, c := run(e, RequireAuth(repo), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resolved := CurrentUser(c)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestRequireAuthWithCookie(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()
	user := seedUser(t, repo)

	token, err := utils.GenerateAccessToken(user.Email, user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: token})
	rec, _ := run(e, RequireAuth(repo), req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()
	user := seedUser(t, repo)

	token, err := utils.GenerateToken(user.Email, user.ID, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, _ := run(e, RequireAuth(repo), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsVanishedUser(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()

	// Token is valid but no such user exists anymore: same 401 as an
	// invalid token.
	token, err := utils.GenerateAccessToken("ghost@example.com", 99)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, _ := run(e, RequireAuth(repo), req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthIgnoresNonBearerHeader(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()
	user := seedUser(t, repo)

	token, err := utils.GenerateAccessToken(user.Email, user.ID)
	require.NoError(t, err)

	// A raw token without the Bearer scheme is not accepted from the
	// header.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	rec, _ := run(e, RequireAuth(repo), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// With the cookie present the malformed header is ignored, not fatal.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	req.AddCookie(&http.Cookie{Name: utils.AccessTokenCookie, Value: token})
	rec, _ = run(e, RequireAuth(repo), req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	e := echo.New()
	repo := repositories.NewMockUserRepository()

	rec, _ := run(e, RequireAuth(repo), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &models.User{ID: 1, IsAdmin: false})
	if err := RequireAdmin()(okHandler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("user", &models.User{ID: 1, IsAdmin: true})
	require.NoError(t, RequireAdmin()(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
