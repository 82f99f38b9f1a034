package adminmgmt

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
	"civic-redressal/internal/service/email"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrAdminNotFound = errors.New("admin not found")
)

// Service is the super-admin management surface: admin accounts plus
// the reference department and municipality lists.
type Service interface {
	CreateAdmin(ctx context.Context, input domain.CreateAdminInput) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, input domain.UpdateAdminInput) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListMunicipalities(ctx context.Context) ([]domain.Municipality, error)
}

type service struct {
	adminRepo repository.AdminRepository
	deptRepo  repository.DepartmentRepository
	muniRepo  repository.MunicipalityRepository
	emailSvc  email.Service
}

func NewService(adminRepo repository.AdminRepository, deptRepo repository.DepartmentRepository, muniRepo repository.MunicipalityRepository, emailSvc email.Service) Service {
	return &service{
		adminRepo: adminRepo,
		deptRepo:  deptRepo,
		muniRepo:  muniRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) CreateAdmin(ctx context.Context, input domain.CreateAdminInput) (*domain.Admin, error) {
	exists, err := s.adminRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		ID:             uuid.New(),
		Username:       input.Username,
		PasswordHash:   string(hashedPassword),
		DepartmentID:   input.DepartmentID,
		MunicipalityID: input.MunicipalityID,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	if s.emailSvc != nil && input.Email != nil && *input.Email != "" {
		go func(toEmail, username, password string) {
			if err := s.emailSvc.SendAdminCredentials(context.Background(), toEmail, username, password); err != nil {
				log.Printf("Failed to send credentials email to %s: %v", toEmail, err)
			}
		}(*input.Email, input.Username, input.Password)
	}

	return admin, nil
}

func (s *service) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

func (s *service) UpdateAdmin(ctx context.Context, id uuid.UUID, input domain.UpdateAdminInput) (*domain.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	admin.Username = input.Username
	admin.DepartmentID = input.DepartmentID
	admin.MunicipalityID = input.MunicipalityID

	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hashedPassword)
		admin.PasswordChanged = false
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *service) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}
	return s.adminRepo.Delete(ctx, id)
}

func (s *service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.GetAll(ctx)
}

func (s *service) ListMunicipalities(ctx context.Context) ([]domain.Municipality, error) {
	return s.muniRepo.GetAll(ctx)
}
