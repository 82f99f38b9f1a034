package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"civic-redressal/internal/config"
	"civic-redressal/internal/repository"
	"civic-redressal/internal/service/access"
	"civic-redressal/internal/service/adminmgmt"
	"civic-redressal/internal/service/auth"
	"civic-redressal/internal/service/complaint"
	"civic-redressal/internal/service/email"
	"civic-redressal/internal/service/geo"
	"civic-redressal/internal/service/notification"
	"civic-redressal/internal/service/storage"
	"civic-redressal/internal/service/workload"
)

type Services struct {
	Auth         auth.Service
	Geo          geo.Service
	Access       access.Service
	Complaint    complaint.Service
	Notification notification.Service
	Workload     workload.Service
	AdminMgmt    adminmgmt.Service
	Storage      storage.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	storageService := storage.NewService(minioClient, cfg)
	authService := auth.NewService(repos.User, repos.Admin, repos.Session, cfg)
	geoService := geo.NewService(repos.Department, repos.Municipality, redis)
	accessService := access.NewService(repos.Complaint)
	notificationService := notification.NewService(repos.Notification, repos.Admin)
	complaintService := complaint.NewService(
		repos.Complaint,
		repos.StatusHistory,
		geoService,
		accessService,
		notificationService,
		storageService,
		cfg,
	)
	workloadService := workload.NewService(repos.Admin, repos.Complaint, redis)
	adminMgmtService := adminmgmt.NewService(repos.Admin, repos.Department, repos.Municipality, emailService)

	return &Services{
		Auth:         authService,
		Geo:          geoService,
		Access:       accessService,
		Complaint:    complaintService,
		Notification: notificationService,
		Workload:     workloadService,
		AdminMgmt:    adminMgmtService,
		Storage:      storageService,
		Email:        emailService,
	}
}
