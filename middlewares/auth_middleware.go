package middlewares

import (
	"net/http"
	"strings"

	"StoreHub/models"
	"StoreHub/repositories"
	"StoreHub/utils"

	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// RequireAuth validates the access token and resolves it to a user, which
// is stored in the request context. Every failure mode, including a user
// that no longer exists, is the same generic 401.
func RequireAuth(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			claims, err := utils.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, utils.ErrInvalidToken.Error())
			}

			user, err := userRepo.FindByEmail(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, utils.ErrInvalidToken.Error())
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the administrative flag. Must run after
// RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}

// extractToken reads the bearer header first, then falls back to the
// access token cookie. A header without the Bearer scheme is ignored.
func extractToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	cookie, err := c.Cookie(utils.AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
