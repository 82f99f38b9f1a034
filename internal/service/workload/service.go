package workload

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
)

type Service interface {
	// Statuses reports one dashboard row per admin. Department scope
	// wins over municipality scope; the super admin has no scope and
	// keeps zero counts.
	Statuses(ctx context.Context) ([]domain.AdminWorkStatus, error)
}

type service struct {
	adminRepo     repository.AdminRepository
	complaintRepo repository.ComplaintRepository
	redis         *redis.Client
}

func NewService(adminRepo repository.AdminRepository, complaintRepo repository.ComplaintRepository, redis *redis.Client) Service {
	return &service{
		adminRepo:     adminRepo,
		complaintRepo: complaintRepo,
		redis:         redis,
	}
}

const cacheKey = "workload:statuses"

func (s *service) Statuses(ctx context.Context) ([]domain.AdminWorkStatus, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var statuses []domain.AdminWorkStatus
			if json.Unmarshal([]byte(cached), &statuses) == nil {
				return statuses, nil
			}
		}
	}

	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.AdminWorkStatus, 0, len(admins))
	for _, admin := range admins {
		row := domain.AdminWorkStatus{
			AdminID:          admin.ID,
			Username:         admin.Username,
			DepartmentName:   admin.DepartmentName,
			MunicipalityName: admin.MunicipalityName,
		}

		switch {
		case admin.DepartmentID != nil:
			if row.Total, err = s.complaintRepo.CountByDepartment(ctx, *admin.DepartmentID); err != nil {
				return nil, err
			}
			if row.Pending, err = s.complaintRepo.CountByDepartmentAndStatus(ctx, *admin.DepartmentID, domain.StatusPending); err != nil {
				return nil, err
			}
			if row.Resolved, err = s.complaintRepo.CountByDepartmentAndStatus(ctx, *admin.DepartmentID, domain.StatusCompleted); err != nil {
				return nil, err
			}
		case admin.MunicipalityID != nil:
			if row.Total, err = s.complaintRepo.CountByMunicipality(ctx, *admin.MunicipalityID); err != nil {
				return nil, err
			}
			if row.Pending, err = s.complaintRepo.CountByMunicipalityAndStatus(ctx, *admin.MunicipalityID, domain.StatusPending); err != nil {
				return nil, err
			}
			if row.Resolved, err = s.complaintRepo.CountByMunicipalityAndStatus(ctx, *admin.MunicipalityID, domain.StatusCompleted); err != nil {
				return nil, err
			}
		}

		statuses = append(statuses, row)
	}

	if s.redis != nil {
		if statusesJSON, err := json.Marshal(statuses); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statusesJSON, time.Minute).Err()
		}
	}

	return statuses, nil
}
