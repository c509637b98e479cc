package controllers

import (
	"net/http"

	"StoreHub/services"
	"StoreHub/utils"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	registrationsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storehub_registrations_total",
		Help: "Total number of registered accounts",
	})
	loginsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storehub_logins_total",
		Help: "Total number of successful password logins",
	})
)

type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles user registration
func (a *AuthController) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "username, email and password are required"})
	}

	user, err := a.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"username": user.Username,
	}).Info("User registered")
	registrationsCounter.Inc()

	return c.JSON(http.StatusCreated, user)
}

// Login handles user login
func (a *AuthController) Login(c echo.Context) error {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&credentials); err != nil {
		logrus.WithFields(logrus.Fields{
			"error": err,
		}).Error("Error binding JSON")
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	user, tokens, err := a.authService.Login(credentials.Email, credentials.Password)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"email": user.Email,
	}).Info("User logged in")
	loginsCounter.Inc()

	utils.SetTokenCookies(c, tokens.AccessToken, tokens.RefreshToken)
	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken mints a new access token. The refresh token comes from the
// JSON body or, failing that, the refresh cookie; the same refresh token is
// echoed back.
func (a *AuthController) RefreshToken(c echo.Context) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "Invalid request"})
	}

	refreshToken := body.RefreshToken
	if refreshToken == "" {
		if cookie, err := c.Cookie(utils.RefreshTokenCookie); err == nil {
			refreshToken = cookie.Value
		}
	}
	if refreshToken == "" {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{"error": "refresh token missing"})
	}

	tokens, err := a.authService.Refresh(refreshToken)
	if err != nil {
		return err
	}

	utils.SetTokenCookies(c, tokens.AccessToken, tokens.RefreshToken)
	return c.JSON(http.StatusOK, tokens)
}

// Logout clears the token cookies. Idempotent: always answers 200.
func (a *AuthController) Logout(c echo.Context) error {
	utils.ClearTokenCookies(c)
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Successfully logged out"})
}
