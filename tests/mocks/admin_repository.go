package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *AdminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AdminRepository) GetAll(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *AdminRepository) ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Admin, error) {
	args := m.Called(ctx, municipalityID)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *AdminRepository) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]domain.Admin, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *AdminRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string, passwordChanged bool) error {
	args := m.Called(ctx, id, passwordHash, passwordChanged)
	return args.Error(0)
}
