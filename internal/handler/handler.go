package handler

import "civic-redressal/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Complaint    *ComplaintHandler
	Notification *NotificationHandler
	SuperAdmin   *SuperAdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Complaint:    NewComplaintHandler(services.Complaint, services.Access),
		Notification: NewNotificationHandler(services.Notification),
		SuperAdmin:   NewSuperAdminHandler(services.AdminMgmt, services.Workload, services.Notification),
	}
}
