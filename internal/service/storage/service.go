package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"civic-redressal/internal/config"
)

var ErrUnavailable = errors.New("object storage unavailable")

// Service stores complaint photo evidence and hands back an opaque
// path the engine persists as-is.
type Service interface {
	Store(ctx context.Context, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Store(ctx context.Context, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrUnavailable
	}

	path := fmt.Sprintf("complaints/%s/%s", time.Now().Format("2006/01"), uuid.New().String())
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, path, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return path, nil
}

func (s *service) Remove(ctx context.Context, path string) error {
	if s.minioClient == nil {
		return ErrUnavailable
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, path, minio.RemoveObjectOptions{})
}

func (s *service) PublicURL(path string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(path))
}
