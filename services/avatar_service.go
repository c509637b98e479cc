package services

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"StoreHub/repositories"
	"StoreHub/storage"
	"StoreHub/utils"

	"github.com/sirupsen/logrus"
)

// maxAvatarSize caps how much of a remote image we are willing to read.
const maxAvatarSize = 5 << 20

// allowedImageTypes maps sniffed content types to the stored extension.
// The URL or uploaded filename is never trusted.
var allowedImageTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

type AvatarService struct {
	store    storage.Storage
	userRepo repositories.UserRepository
	client   *http.Client
}

func NewAvatarService(store storage.Storage, userRepo repositories.UserRepository) *AvatarService {
	return &AvatarService{
		store:    store,
		userRepo: userRepo,
		// The upstream has no timeout here; 10s is a hardening, not a
		// behavior change.
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchAndValidate downloads a remote image and sniffs its actual content.
// Returns the payload and the extension to store it under.
func (s *AvatarService) FetchAndValidate(url string) ([]byte, string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: status %d", utils.ErrDownload, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarSize))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrDownload, err)
	}

	ext, err := sniffImageType(data)
	if err != nil {
		return nil, "", err
	}
	return data, ext, nil
}

// Save writes the avatar under a filename derived from the owning user's
// id. The extension comes from sniffing only, so neither component can
// traverse paths.
func (s *AvatarService) Save(data []byte, ext string, userID uint) (string, error) {
	filename := fmt.Sprintf("avatars/%d.%s", userID, ext)
	if _, err := s.store.Upload(bytes.NewReader(data), filename); err != nil {
		return "", err
	}
	return filename, nil
}

// IngestFromURL fetches, validates and persists a remote avatar, then
// records it on the user row.
func (s *AvatarService) IngestFromURL(userID uint, url string) (string, error) {
	data, ext, err := s.FetchAndValidate(url)
	if err != nil {
		return "", err
	}
	path, err := s.Save(data, ext, userID)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateAvatar(userID, path); err != nil {
		return "", err
	}
	return path, nil
}

// UploadFromReader handles a direct profile upload. Same sniffing rules;
// overwriting an existing avatar is allowed here.
func (s *AvatarService) UploadFromReader(userID uint, file io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		return "", err
	}
	ext, err := sniffImageType(data)
	if err != nil {
		return "", err
	}
	path, err := s.Save(data, ext, userID)
	if err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateAvatar(userID, path); err != nil {
		return "", err
	}
	return path, nil
}

// Open streams a stored avatar and reports its content type.
func (s *AvatarService) Open(path string) (io.ReadCloser, string, error) {
	rc, err := s.store.Open(path)
	if err != nil {
		return nil, "", err
	}
	contentType := "image/jpeg"
	if strings.HasSuffix(path, ".png") {
		contentType = "image/png"
	}
	return rc, contentType, nil
}

// Delete removes the stored file and clears the user's avatar reference.
// A missing file is not an error.
func (s *AvatarService) Delete(userID uint, path string) error {
	if err := s.store.Delete(path); err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("Failed to remove avatar file")
	}
	return s.userRepo.UpdateAvatar(userID, "")
}

func sniffImageType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", utils.ErrUnsupportedImage, contentType)
	}
	return ext, nil
}
