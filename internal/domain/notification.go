package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	SenderAdminID *uuid.UUID       `json:"sender_admin_id" db:"sender_admin_id"`
	AdminID       uuid.UUID        `json:"admin_id" db:"admin_id"`
	Message       string           `json:"message" db:"message"`
	Type          NotificationType `json:"type" db:"type"`
	IsRead        bool             `json:"is_read" db:"is_read"`
	ReadAt        *time.Time       `json:"read_at,omitempty" db:"read_at"`
	ComplaintID   *uuid.UUID       `json:"complaint_id,omitempty" db:"complaint_id"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifRemark NotificationType = "REMARK"
	NotifStatus NotificationType = "STATUS"
	NotifSystem NotificationType = "SYSTEM"
)

type SendRemarkInput struct {
	Message string `json:"message" validate:"required"`
}
