package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type StatusHistoryRepository struct {
	mock.Mock
}

func (m *StatusHistoryRepository) Create(ctx context.Context, history *domain.StatusHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *StatusHistoryRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.StatusHistory, error) {
	args := m.Called(ctx, complaintID)
	return args.Get(0).([]domain.StatusHistory), args.Error(1)
}

func (m *StatusHistoryRepository) CountByComplaint(ctx context.Context, complaintID uuid.UUID) (int64, error) {
	args := m.Called(ctx, complaintID)
	return args.Get(0).(int64), args.Error(1)
}
