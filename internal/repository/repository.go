package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User          UserRepository
	Admin         AdminRepository
	Complaint     ComplaintRepository
	Department    DepartmentRepository
	Municipality  MunicipalityRepository
	StatusHistory StatusHistoryRepository
	Notification  NotificationRepository
	Session       SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Admin:         NewAdminRepository(db),
		Complaint:     NewComplaintRepository(db),
		Department:    NewDepartmentRepository(db),
		Municipality:  NewMunicipalityRepository(db),
		StatusHistory: NewStatusHistoryRepository(db),
		Notification:  NewNotificationRepository(db),
		Session:       NewSessionRepository(db),
	}
}
