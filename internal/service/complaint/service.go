package complaint

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"civic-redressal/internal/config"
	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
	"civic-redressal/internal/service/access"
	"civic-redressal/internal/service/geo"
	"civic-redressal/internal/service/notification"
	"civic-redressal/internal/service/storage"
)

var (
	ErrComplaintNotFound   = errors.New("complaint not found")
	ErrMissingFields       = errors.New("title, description and category are required")
	ErrInvalidCategory     = errors.New("unrecognized complaint category")
	ErrInvalidStatus       = errors.New("unrecognized complaint status")
	ErrEmptyRemarks        = errors.New("remarks cannot be empty")
	ErrNotOwner            = errors.New("you do not own this complaint")
	ErrDeleteWindowExpired = errors.New("complaints can only be deleted within the grace period after creation")
)

// UploadedImage carries an optional photo-evidence upload through to
// the storage collaborator.
type UploadedImage struct {
	FileName    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type Service interface {
	Create(ctx context.Context, input domain.CreateComplaintInput, image *UploadedImage, owner *domain.User) (*domain.Complaint, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistory, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Complaint, error)
	ListForAdmin(ctx context.Context, admin *domain.Admin) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input domain.UpdateStatusInput, actingAdmin *domain.Admin) (*domain.Complaint, error)
	Delete(ctx context.Context, id uuid.UUID, requestingUser *domain.User) error
}

type service struct {
	complaintRepo repository.ComplaintRepository
	historyRepo   repository.StatusHistoryRepository
	geoSvc        geo.Service
	accessSvc     access.Service
	notifSvc      notification.Service
	storageSvc    storage.Service
	cfg           *config.Config
}

func NewService(
	complaintRepo repository.ComplaintRepository,
	historyRepo repository.StatusHistoryRepository,
	geoSvc geo.Service,
	accessSvc access.Service,
	notifSvc notification.Service,
	storageSvc storage.Service,
	cfg *config.Config,
) Service {
	return &service{
		complaintRepo: complaintRepo,
		historyRepo:   historyRepo,
		geoSvc:        geoSvc,
		accessSvc:     accessSvc,
		notifSvc:      notifSvc,
		storageSvc:    storageSvc,
		cfg:           cfg,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateComplaintInput, image *UploadedImage, owner *domain.User) (*domain.Complaint, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" || input.Category == "" {
		return nil, ErrMissingFields
	}
	category, ok := domain.ParseCategory(input.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	complaint := &domain.Complaint{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Status:      domain.StatusPending,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		UserID:      owner.ID,
	}

	if image != nil {
		path, err := s.storageSvc.Store(ctx, image.FileName, image.Size, image.ContentType, image.Reader)
		if err != nil {
			return nil, err
		}
		complaint.ImagePath = &path
	}

	dept, err := s.geoSvc.ResolveDepartment(ctx, category)
	if err != nil {
		return nil, err
	}
	if dept != nil {
		complaint.DepartmentID = &dept.ID
		complaint.DepartmentName = dept.Name
	}

	municipality, cityName, err := s.geoSvc.ResolveMunicipality(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	complaint.CityName = cityName
	if municipality != nil {
		complaint.MunicipalityID = &municipality.ID
		complaint.MunicipalityName = municipality.Name
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		if complaint.ImagePath != nil {
			_ = s.storageSvc.Remove(ctx, *complaint.ImagePath)
		}
		return nil, err
	}

	complaint.OwnerUsername = owner.Username
	complaint.OwnerFullName = owner.FullName
	complaint.OwnerMobile = owner.Mobile
	complaint.OwnerEmail = owner.Email
	s.attachImageURL(complaint)
	return complaint, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	s.attachImageURL(complaint)
	return complaint, nil
}

func (s *service) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistory, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	return s.historyRepo.ListByComplaint(ctx, id)
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Complaint, error) {
	complaints, err := s.complaintRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range complaints {
		s.attachImageURL(&complaints[i])
	}
	return complaints, nil
}

func (s *service) ListForAdmin(ctx context.Context, admin *domain.Admin) ([]domain.Complaint, error) {
	complaints, err := s.accessSvc.VisibleComplaints(ctx, admin)
	if err != nil {
		return nil, err
	}

	redact := s.accessSvc.ShouldRedactCitizen(admin)
	for i := range complaints {
		s.attachImageURL(&complaints[i])
		if redact {
			s.accessSvc.RedactOwner(&complaints[i])
		}
	}
	return complaints, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input domain.UpdateStatusInput, actingAdmin *domain.Admin) (*domain.Complaint, error) {
	status, ok := domain.ParseStatus(input.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(input.Remarks) == "" {
		return nil, ErrEmptyRemarks
	}

	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}

	history := &domain.StatusHistory{
		ID:          uuid.New(),
		ComplaintID: complaint.ID,
		Status:      status,
		Remarks:     input.Remarks,
		AdminID:     actingAdmin.ID,
	}

	if err := s.complaintRepo.UpdateStatusWithHistory(ctx, id, status, history); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	complaint.Status = status
	complaint.UpdatedAt = history.CreatedAt

	if err := s.notifSvc.NotifyStatusChange(ctx, complaint, status, actingAdmin); err != nil {
		log.Printf("Failed to notify status change for complaint %s: %v", complaint.ID, err)
	}

	s.attachImageURL(complaint)
	return complaint, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, requestingUser *domain.User) error {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return ErrComplaintNotFound
	}

	if complaint.UserID != requestingUser.ID {
		return ErrNotOwner
	}

	window := s.deleteWindow()
	if time.Since(complaint.CreatedAt) > window {
		return ErrDeleteWindowExpired
	}

	// History rows cascade with the complaint; the image is removed
	// best-effort since the row is already gone.
	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		return err
	}
	if complaint.ImagePath != nil {
		if err := s.storageSvc.Remove(ctx, *complaint.ImagePath); err != nil {
			log.Printf("Failed to remove image for deleted complaint %s: %v", complaint.ID, err)
		}
	}
	return nil
}

func (s *service) deleteWindow() time.Duration {
	if s.cfg != nil && s.cfg.DeleteWindow > 0 {
		return s.cfg.DeleteWindow
	}
	return 7 * time.Minute
}

func (s *service) attachImageURL(complaint *domain.Complaint) {
	if complaint.ImagePath != nil && s.storageSvc != nil {
		complaint.ImageURL = s.storageSvc.PublicURL(*complaint.ImagePath)
	}
}
