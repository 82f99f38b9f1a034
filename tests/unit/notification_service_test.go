package unit_test

import (
	"context"
	"testing"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/service/notification"
	"civic-redressal/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_SendRemark(t *testing.T) {
	ctx := context.Background()
	sender := &domain.Admin{ID: uuid.New(), Username: "admin"}

	t.Run("Blank Message", func(t *testing.T) {
		svc := notification.NewService(new(mocks.NotificationRepository), new(mocks.AdminRepository))

		_, err := svc.SendRemark(ctx, sender, uuid.New(), "   ")

		assert.ErrorIs(t, err, notification.ErrEmptyMessage)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		mockAdminRepo := new(mocks.AdminRepository)
		svc := notification.NewService(new(mocks.NotificationRepository), mockAdminRepo)

		targetID := uuid.New()
		mockAdminRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		_, err := svc.SendRemark(ctx, sender, targetID, "please follow up")

		assert.ErrorIs(t, err, notification.ErrAdminNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockAdminRepo := new(mocks.AdminRepository)
		svc := notification.NewService(mockNotifRepo, mockAdminRepo)

		target := &domain.Admin{ID: uuid.New(), Username: "admin_chn"}
		mockAdminRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.AdminID == target.ID &&
				n.Type == domain.NotifRemark &&
				!n.IsRead &&
				n.SenderAdminID != nil && *n.SenderAdminID == sender.ID
		})).Return(nil).Once()

		sent, err := svc.SendRemark(ctx, sender, target.ID, "please follow up")

		assert.NoError(t, err)
		assert.Equal(t, "please follow up", sent.Message)
		mockNotifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_NotifyStatusChange(t *testing.T) {
	ctx := context.Background()

	muniID := uuid.New()
	deptID := uuid.New()
	actingAdmin := &domain.Admin{ID: uuid.New(), MunicipalityID: &muniID}

	complaint := &domain.Complaint{
		ID:             uuid.New(),
		Title:          "Pothole on Anna Salai",
		MunicipalityID: &muniID,
		DepartmentID:   &deptID,
	}

	t.Run("Fans Out And Skips Acting Admin", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockAdminRepo := new(mocks.AdminRepository)
		svc := notification.NewService(mockNotifRepo, mockAdminRepo)

		other := domain.Admin{ID: uuid.New(), MunicipalityID: &muniID}
		deptAdmin := domain.Admin{ID: uuid.New(), DepartmentID: &deptID}

		mockAdminRepo.On("ListByMunicipality", ctx, muniID).Return([]domain.Admin{*actingAdmin, other}, nil).Once()
		mockAdminRepo.On("ListByDepartment", ctx, deptID).Return([]domain.Admin{deptAdmin}, nil).Once()
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifStatus &&
				n.ComplaintID != nil && *n.ComplaintID == complaint.ID &&
				n.AdminID != actingAdmin.ID
		})).Return(nil).Times(2)

		err := svc.NotifyStatusChange(ctx, complaint, domain.StatusInProgress, actingAdmin)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Deduplicates Overlapping Scopes", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockAdminRepo := new(mocks.AdminRepository)
		svc := notification.NewService(mockNotifRepo, mockAdminRepo)

		both := domain.Admin{ID: uuid.New(), MunicipalityID: &muniID, DepartmentID: &deptID}

		mockAdminRepo.On("ListByMunicipality", ctx, muniID).Return([]domain.Admin{both}, nil).Once()
		mockAdminRepo.On("ListByDepartment", ctx, deptID).Return([]domain.Admin{both}, nil).Once()
		mockNotifRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.NotifyStatusChange(ctx, complaint, domain.StatusCompleted, nil)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()

	// Marking an already-read or unknown notification succeeds quietly.
	mockNotifRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockNotifRepo, new(mocks.AdminRepository))

	id := uuid.New()
	mockNotifRepo.On("MarkAsRead", ctx, id).Return(nil).Twice()

	assert.NoError(t, svc.MarkAsRead(ctx, id))
	assert.NoError(t, svc.MarkAsRead(ctx, id))
	mockNotifRepo.AssertExpectations(t)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()

	mockNotifRepo := new(mocks.NotificationRepository)
	svc := notification.NewService(mockNotifRepo, new(mocks.AdminRepository))

	adminID := uuid.New()
	mockNotifRepo.On("CountUnread", ctx, adminID).Return(int64(3), nil).Once()

	count, err := svc.UnreadCount(ctx, adminID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
