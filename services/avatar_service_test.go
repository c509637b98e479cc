package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"StoreHub/models"
	"StoreHub/repositories"
	"StoreHub/storage"
	"StoreHub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngPayload = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...)
	gifPayload = append([]byte("GIF89a"), make([]byte, 16)...)
)

func TestFetchAndValidateSniffsContent(t *testing.T) {
	// The URL claims .png, the body is a GIF; the sniffed type wins.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(gifPayload)
	}))
	defer server.Close()

	service := NewAvatarService(storage.NewLocalStorage(t.TempDir()), repositories.NewMockUserRepository())

	_, _, err := service.FetchAndValidate(server.URL + "/avatar.png")
	assert.ErrorIs(t, err, utils.ErrUnsupportedImage)
}

func TestFetchAndValidateAcceptsPNG(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngPayload)
	}))
	defer server.Close()

	service := NewAvatarService(storage.NewLocalStorage(t.TempDir()), repositories.NewMockUserRepository())

	data, ext, err := service.FetchAndValidate(server.URL + "/avatar")
	require.NoError(t, err)
	assert.Equal(t, "png", ext)
	assert.Equal(t, pngPayload, data)
}

func TestFetchAndValidateNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	service := NewAvatarService(storage.NewLocalStorage(t.TempDir()), repositories.NewMockUserRepository())

	_, _, err := service.FetchAndValidate(server.URL + "/missing.png")
	assert.ErrorIs(t, err, utils.ErrDownload)
}

func TestFetchAndValidateNetworkFailure(t *testing.T) {
	service := NewAvatarService(storage.NewLocalStorage(t.TempDir()), repositories.NewMockUserRepository())

	_, _, err := service.FetchAndValidate("http://127.0.0.1:1/avatar.png")
	assert.ErrorIs(t, err, utils.ErrDownload)
}

func TestIngestFromURLPersistsUnderUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngPayload)
	}))
	defer server.Close()

	baseDir := t.TempDir()
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "carol", Email: "carol@example.com"}))
	service := NewAvatarService(storage.NewLocalStorage(baseDir), repo)

	path, err := service.IngestFromURL(1, server.URL+"/photo")
	require.NoError(t, err)
	assert.Equal(t, "avatars/1.png", path)

	written, err := os.ReadFile(filepath.Join(baseDir, "avatars", "1.png"))
	require.NoError(t, err)
	assert.Equal(t, pngPayload, written)

	user, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "avatars/1.png", user.AvatarPath)
}

func TestUploadFromReaderOverwrites(t *testing.T) {
	baseDir := t.TempDir()
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "carol", Email: "carol@example.com"}))
	service := NewAvatarService(storage.NewLocalStorage(baseDir), repo)

	_, err := service.UploadFromReader(1, bytes.NewReader(pngPayload))
	require.NoError(t, err)

	jpegPayload := append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 16)...)
	path, err := service.UploadFromReader(1, bytes.NewReader(jpegPayload))
	require.NoError(t, err)
	assert.Equal(t, "avatars/1.jpg", path)

	user, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "avatars/1.jpg", user.AvatarPath)
}

func TestUploadFromReaderRejectsNonImage(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "carol", Email: "carol@example.com"}))
	service := NewAvatarService(storage.NewLocalStorage(t.TempDir()), repo)

	_, err := service.UploadFromReader(1, bytes.NewReader([]byte("plain text, not an image")))
	assert.ErrorIs(t, err, utils.ErrUnsupportedImage)
}

func TestDeleteClearsReference(t *testing.T) {
	baseDir := t.TempDir()
	repo := repositories.NewMockUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "carol", Email: "carol@example.com"}))
	service := NewAvatarService(storage.NewLocalStorage(baseDir), repo)

	path, err := service.UploadFromReader(1, bytes.NewReader(pngPayload))
	require.NoError(t, err)

	require.NoError(t, service.Delete(1, path))

	_, err = os.Stat(filepath.Join(baseDir, path))
	assert.True(t, os.IsNotExist(err))

	user, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Empty(t, user.AvatarPath)
}
