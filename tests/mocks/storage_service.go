package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type StorageService struct {
	mock.Mock
}

func (m *StorageService) Store(ctx context.Context, fileName string, fileSize int64, contentType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, fileName, fileSize, contentType, reader)
	return args.String(0), args.Error(1)
}

func (m *StorageService) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *StorageService) PublicURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}
