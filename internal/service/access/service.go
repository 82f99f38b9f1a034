package access

import (
	"context"
	"errors"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
)

var ErrSuperAdminOnly = errors.New("restricted to super admin")

// Service is the read-time scoping and redaction policy for admin
// callers. It has no side effects and must sit on every path that
// surfaces complaint or citizen data to an admin.
type Service interface {
	VisibleComplaints(ctx context.Context, admin *domain.Admin) ([]domain.Complaint, error)
	ShouldRedactCitizen(admin *domain.Admin) bool
	RedactOwner(complaint *domain.Complaint)
	AssertSuperAdmin(admin *domain.Admin) error
}

type service struct {
	complaintRepo repository.ComplaintRepository
}

func NewService(complaintRepo repository.ComplaintRepository) Service {
	return &service{complaintRepo: complaintRepo}
}

func (s *service) VisibleComplaints(ctx context.Context, admin *domain.Admin) ([]domain.Complaint, error) {
	if admin.MunicipalityID == nil {
		return s.complaintRepo.ListAll(ctx)
	}
	return s.complaintRepo.ListByMunicipality(ctx, *admin.MunicipalityID)
}

func (s *service) ShouldRedactCitizen(admin *domain.Admin) bool {
	return !admin.IsSuperAdmin()
}

func (s *service) RedactOwner(complaint *domain.Complaint) {
	complaint.OwnerMobile = domain.RedactedContact
	complaint.OwnerEmail = domain.RedactedContact
}

func (s *service) AssertSuperAdmin(admin *domain.Admin) error {
	if !admin.IsSuperAdmin() {
		return ErrSuperAdminOnly
	}
	return nil
}
