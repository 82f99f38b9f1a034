package domain

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	Category       Category   `json:"category" db:"category"`
	Status         Status     `json:"status" db:"status"`
	Latitude       *float64   `json:"latitude" db:"latitude"`
	Longitude      *float64   `json:"longitude" db:"longitude"`
	Address        *string    `json:"address,omitempty" db:"address"`
	ImagePath      *string    `json:"image_path,omitempty" db:"image_path"`
	ImageURL       string     `json:"image_url,omitempty" db:"-"`
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`
	DepartmentID   *uuid.UUID `json:"department_id" db:"department_id"`
	MunicipalityID *uuid.UUID `json:"municipality_id" db:"municipality_id"`
	CityName       string     `json:"city_name" db:"city_name"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`

	OwnerUsername    string `json:"owner_username,omitempty" db:"owner_username"`
	OwnerFullName    string `json:"owner_full_name,omitempty" db:"owner_full_name"`
	OwnerMobile      string `json:"owner_mobile,omitempty" db:"owner_mobile"`
	OwnerEmail       string `json:"owner_email,omitempty" db:"owner_email"`
	DepartmentName   string `json:"department_name,omitempty" db:"department_name"`
	MunicipalityName string `json:"municipality_name,omitempty" db:"municipality_name"`
}

type CreateComplaintInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address,omitempty"`
}

type UpdateStatusInput struct {
	Status  string `json:"status" validate:"required"`
	Remarks string `json:"remarks" validate:"required"`
}

type Category string

const (
	CategoryRoad        Category = "ROAD"
	CategoryGarbage     Category = "GARBAGE"
	CategoryWater       Category = "WATER"
	CategoryElectricity Category = "ELECTRICITY"
	CategoryGeneral     Category = "GENERAL"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryRoad, CategoryGarbage, CategoryWater, CategoryElectricity, CategoryGeneral:
		return Category(s), true
	default:
		return "", false
	}
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusRejected   Status = "REJECTED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}
