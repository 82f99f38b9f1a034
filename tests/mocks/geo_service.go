package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type GeoService struct {
	mock.Mock
}

func (m *GeoService) ResolveDepartment(ctx context.Context, category domain.Category) (*domain.Department, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *GeoService) ResolveMunicipality(ctx context.Context, lat, lon *float64) (*domain.Municipality, string, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Municipality), args.String(1), args.Error(2)
}
