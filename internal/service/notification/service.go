package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
)

var (
	ErrEmptyMessage  = errors.New("message cannot be empty")
	ErrAdminNotFound = errors.New("admin not found")
)

type Service interface {
	// SendRemark records a directed message from one admin to another.
	SendRemark(ctx context.Context, fromAdmin *domain.Admin, toAdminID uuid.UUID, message string) (*domain.Notification, error)
	// NotifyStatusChange fans a system notification out to the admins
	// scoped to the complaint's department or municipality, skipping
	// the admin who made the change. Failures are the caller's to
	// ignore; a lost notification never fails a status update.
	NotifyStatusChange(ctx context.Context, complaint *domain.Complaint, status domain.Status, actingAdmin *domain.Admin) error
	List(ctx context.Context, adminID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context, adminID uuid.UUID) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	adminRepo repository.AdminRepository
}

func NewService(notifRepo repository.NotificationRepository, adminRepo repository.AdminRepository) Service {
	return &service{
		notifRepo: notifRepo,
		adminRepo: adminRepo,
	}
}

func (s *service) SendRemark(ctx context.Context, fromAdmin *domain.Admin, toAdminID uuid.UUID, message string) (*domain.Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	target, err := s.adminRepo.GetByID(ctx, toAdminID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrAdminNotFound
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		AdminID: target.ID,
		Message: message,
		Type:    domain.NotifRemark,
	}
	if fromAdmin != nil {
		senderID := fromAdmin.ID
		notif.SenderAdminID = &senderID
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

func (s *service) NotifyStatusChange(ctx context.Context, complaint *domain.Complaint, status domain.Status, actingAdmin *domain.Admin) error {
	recipients := map[uuid.UUID]domain.Admin{}

	if complaint.MunicipalityID != nil {
		admins, err := s.adminRepo.ListByMunicipality(ctx, *complaint.MunicipalityID)
		if err != nil {
			return err
		}
		for _, a := range admins {
			recipients[a.ID] = a
		}
	}
	if complaint.DepartmentID != nil {
		admins, err := s.adminRepo.ListByDepartment(ctx, *complaint.DepartmentID)
		if err != nil {
			return err
		}
		for _, a := range admins {
			recipients[a.ID] = a
		}
	}

	message := fmt.Sprintf("Complaint %q is now %s", complaint.Title, status)
	complaintID := complaint.ID

	for _, admin := range recipients {
		if actingAdmin != nil && admin.ID == actingAdmin.ID {
			continue
		}

		notif := &domain.Notification{
			ID:          uuid.New(),
			AdminID:     admin.ID,
			Message:     message,
			Type:        domain.NotifStatus,
			ComplaintID: &complaintID,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) List(ctx context.Context, adminID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListByReceiver(ctx, adminID)
}

// MarkAsRead is idempotent: already-read and unknown notifications
// are a silent no-op.
func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) UnreadCount(ctx context.Context, adminID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, adminID)
}
