package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (s *LocalStorage) Upload(file io.Reader, filename string) (string, error) {
	logrus.Infof("Starting file upload: %s", filename)
	path := filepath.Join(s.BasePath, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *LocalStorage) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.BasePath, filename))
}

func (s *LocalStorage) Delete(filename string) error {
	logrus.Infof("Initiating file deletion: %s", filename)
	return os.Remove(filepath.Join(s.BasePath, filename))
}

func (s *LocalStorage) Exists(filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.BasePath, filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
