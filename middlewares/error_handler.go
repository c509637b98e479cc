package middlewares

import (
	"errors"
	"net/http"

	"StoreHub/utils"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrorHandler maps domain errors onto the HTTP taxonomy: conflicts are
// 400 with their specific message, authentication failures are a generic
// 401, missing records are 404, everything else is a generic 500.
func ErrorHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			switch {
			case utils.IsConflict(err):
				return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
			case errors.Is(err, utils.ErrInvalidCredentials):
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{"error": utils.ErrInvalidCredentials.Error()})
			case errors.Is(err, utils.ErrInvalidToken):
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{"error": utils.ErrInvalidToken.Error()})
			case errors.Is(err, utils.ErrUnsupportedImage):
				return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": utils.ErrUnsupportedImage.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				return c.JSON(http.StatusNotFound, map[string]interface{}{"error": "not found"})
			case errors.Is(err, gorm.ErrDuplicatedKey):
				return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "duplicate record"})
			default:
				logrus.Error("Error request: ", err)
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "failed to process request"})
			}
		}
	}
}
