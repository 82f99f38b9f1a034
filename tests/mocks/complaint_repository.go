package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type ComplaintRepository struct {
	mock.Mock
}

func (m *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *ComplaintRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Complaint, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *ComplaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *ComplaintRepository) ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Complaint, error) {
	args := m.Called(ctx, municipalityID)
	return args.Get(0).([]domain.Complaint), args.Error(1)
}

func (m *ComplaintRepository) UpdateStatusWithHistory(ctx context.Context, id uuid.UUID, status domain.Status, history *domain.StatusHistory) error {
	args := m.Called(ctx, id, status, history)
	return args.Error(0)
}

func (m *ComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ComplaintRepository) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ComplaintRepository) CountByDepartmentAndStatus(ctx context.Context, departmentID uuid.UUID, status domain.Status) (int64, error) {
	args := m.Called(ctx, departmentID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ComplaintRepository) CountByMunicipality(ctx context.Context, municipalityID uuid.UUID) (int64, error) {
	args := m.Called(ctx, municipalityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ComplaintRepository) CountByMunicipalityAndStatus(ctx context.Context, municipalityID uuid.UUID, status domain.Status) (int64, error) {
	args := m.Called(ctx, municipalityID, status)
	return args.Get(0).(int64), args.Error(1)
}
