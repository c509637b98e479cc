package storage

import (
	"io"
)

// Storage is the avatar file store. Filenames are relative paths like
// "avatars/7.png".
type Storage interface {
	Upload(file io.Reader, filename string) (string, error)
	Open(filename string) (io.ReadCloser, error)
	Delete(filename string) error
	Exists(filename string) (bool, error)
}
