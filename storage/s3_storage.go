package storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
)

type S3Storage struct {
	Client *s3.Client
	Bucket string
}

// NewS3Storage builds an S3-backed store. Credentials, region and any
// custom endpoint come from the standard AWS environment.
func NewS3Storage(bucket string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		logrus.Errorf("Failed to load AWS configuration: %v", err)
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	logrus.Info("Successfully configured S3 storage")
	return &S3Storage{Client: client, Bucket: bucket}, nil
}

func (s *S3Storage) Upload(file io.Reader, filename string) (string, error) {
	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"bucket":   s.Bucket,
	}).Info("Initiating file upload")

	_, err := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filename),
		Body:   file,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": filename,
			"error":    err,
		}).Error("Error uploading file")
		return "", err
	}

	return filename, nil
}

func (s *S3Storage) Open(filename string) (io.ReadCloser, error) {
	result, err := s.Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": filename,
			"error":    err,
		}).Error("Error downloading file")
		return nil, err
	}
	return result.Body, nil
}

func (s *S3Storage) Delete(filename string) error {
	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"bucket":   s.Bucket,
	}).Info("Initiating file deletion")

	_, err := s.Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filename),
	})
	return err
}

func (s *S3Storage) Exists(filename string) (bool, error) {
	_, err := s.Client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filename),
	})
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
