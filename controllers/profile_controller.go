package controllers

import (
	"net/http"

	"StoreHub/middlewares"
	"StoreHub/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var avatarUploadsCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storehub_avatar_uploads_total",
	Help: "Total number of avatar uploads",
})

type ProfileController struct {
	avatarService *services.AvatarService
}

func NewProfileController(avatarService *services.AvatarService) *ProfileController {
	return &ProfileController{avatarService: avatarService}
}

// UploadAvatar stores a new avatar for the authenticated user. The payload
// is content-sniffed; an existing avatar is overwritten.
func (p *ProfileController) UploadAvatar(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": "file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	path, err := p.avatarService.UploadFromReader(user.ID, file)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"path":    path,
	}).Info("Avatar uploaded")
	avatarUploadsCounter.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Avatar uploaded successfully",
		"avatar_url": "/static/" + path,
	})
}

// GetAvatar streams the authenticated user's avatar.
func (p *ProfileController) GetAvatar(c echo.Context) error {
	user := middlewares.CurrentUser(c)
	if user.AvatarPath == "" {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"error": "avatar not found"})
	}

	rc, contentType, err := p.avatarService.Open(user.AvatarPath)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"error": "avatar not found"})
	}
	defer rc.Close()

	return c.Stream(http.StatusOK, contentType, rc)
}

// DeleteAvatar removes the avatar file and clears the reference.
func (p *ProfileController) DeleteAvatar(c echo.Context) error {
	user := middlewares.CurrentUser(c)
	if user.AvatarPath == "" {
		return c.JSON(http.StatusNotFound, map[string]interface{}{"error": "avatar not found"})
	}

	if err := p.avatarService.Delete(user.ID, user.AvatarPath); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Avatar deleted successfully"})
}
