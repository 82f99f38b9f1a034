package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type MunicipalityRepository struct {
	mock.Mock
}

func (m *MunicipalityRepository) Create(ctx context.Context, municipality *domain.Municipality) error {
	args := m.Called(ctx, municipality)
	return args.Error(0)
}

func (m *MunicipalityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Municipality, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}

func (m *MunicipalityRepository) GetByName(ctx context.Context, name string) (*domain.Municipality, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Municipality), args.Error(1)
}

func (m *MunicipalityRepository) GetAll(ctx context.Context) ([]domain.Municipality, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Municipality), args.Error(1)
}
