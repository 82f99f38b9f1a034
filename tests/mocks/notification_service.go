package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-redressal/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendRemark(ctx context.Context, fromAdmin *domain.Admin, toAdminID uuid.UUID, message string) (*domain.Notification, error) {
	args := m.Called(ctx, fromAdmin, toAdminID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) NotifyStatusChange(ctx context.Context, complaint *domain.Complaint, status domain.Status, actingAdmin *domain.Admin) error {
	args := m.Called(ctx, complaint, status, actingAdmin)
	return args.Error(0)
}

func (m *NotificationService) List(ctx context.Context, adminID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) UnreadCount(ctx context.Context, adminID uuid.UUID) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}
