package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is an append-only record of a status transition.
// Rows are never updated and only disappear when their complaint is
// hard-deleted (ON DELETE CASCADE).
type StatusHistory struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ComplaintID uuid.UUID `json:"complaint_id" db:"complaint_id"`
	Status      Status    `json:"status" db:"status"`
	Remarks     string    `json:"remarks" db:"remarks"`
	AdminID     uuid.UUID `json:"admin_id" db:"admin_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	AdminUsername string `json:"admin_username,omitempty" db:"admin_username"`
}
