package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"StoreHub/services"
	"StoreHub/utils"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var googleLoginsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storehub_google_logins_total",
	Help: "Total number of successful Google logins",
})

type OAuthController struct {
	oauthService *services.OAuthService
	// FrontendCallbackURL, when non-empty, switches the callback answer
	// from JSON to a redirect carrying the tokens as query parameters.
	frontendCallbackURL string
	stateStore          *sync.Map
}

func NewOAuthController(oauthService *services.OAuthService, frontendCallbackURL string) *OAuthController {
	return &OAuthController{
		oauthService:        oauthService,
		frontendCallbackURL: frontendCallbackURL,
		stateStore:          &sync.Map{},
	}
}

// Login redirects the user to Google's authorization page.
func (h *OAuthController) Login(c echo.Context) error {
	state := generateStateToken()
	if state == "" {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "failed to start login"})
	}
	h.stateStore.Store(state, time.Now().Add(5*time.Minute))

	return c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthURL(state))
}

// Callback handles the provider redirect: state check, code exchange,
// account reconciliation, token issuance. Provider internals never leak:
// everything except conflicts and the missing-id_token case collapses into
// one generic message.
func (h *OAuthController) Callback(c echo.Context) error {
	logger := logrus.WithFields(logrus.Fields{
		"handler":  "OAuthCallback",
		"provider": "google",
	})

	state := c.QueryParam("state")
	if !h.validStateToken(state) {
		logger.Warn("Invalid state token")
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "invalid state"})
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "authorization code not provided"})
	}

	user, tokens, err := h.oauthService.HandleCallback(c.Request().Context(), code)
	if err != nil {
		logger.WithError(err).Error("OAuth callback failed")
		if utils.IsConflict(err) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		}
		if errors.Is(err, utils.ErrMissingIDToken) {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": utils.ErrMissingIDToken.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "google login failed"})
	}

	logger.WithFields(logrus.Fields{
		"email": user.Email,
	}).Info("Google login succeeded")
	googleLoginsCounter.Inc()

	utils.SetTokenCookies(c, tokens.AccessToken, tokens.RefreshToken)

	if h.frontendCallbackURL != "" {
		redirect, err := url.Parse(h.frontendCallbackURL)
		if err == nil {
			q := redirect.Query()
			q.Set("access_token", tokens.AccessToken)
			q.Set("refresh_token", tokens.RefreshToken)
			redirect.RawQuery = q.Encode()
			return c.Redirect(http.StatusFound, redirect.String())
		}
		logger.WithError(err).Error("Invalid frontend callback URL")
	}

	return c.JSON(http.StatusOK, tokens)
}

func (h *OAuthController) validStateToken(token string) bool {
	if token == "" {
		return false
	}
	expiry, ok := h.stateStore.Load(token)
	if !ok {
		return false
	}
	h.stateStore.Delete(token)
	return time.Now().Before(expiry.(time.Time))
}

func generateStateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logrus.WithError(err).Error("Failed to generate state token")
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}
