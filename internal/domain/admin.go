package domain

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Username        string     `json:"username" db:"username"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	PasswordChanged bool       `json:"password_changed" db:"password_changed"`
	DepartmentID    *uuid.UUID `json:"department_id" db:"department_id"`
	MunicipalityID  *uuid.UUID `json:"municipality_id" db:"municipality_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	DepartmentName   *string `json:"department_name,omitempty" db:"department_name"`
	MunicipalityName *string `json:"municipality_name,omitempty" db:"municipality_name"`
}

type AdminRole string

const (
	RoleSuperAdmin        AdminRole = "SUPER_ADMIN"
	RoleMunicipalityAdmin AdminRole = "MUNICIPALITY_ADMIN"
	RoleDepartmentAdmin   AdminRole = "DEPARTMENT_ADMIN"
)

// Role derives the admin tier from the scoping links. An admin with
// neither link is the super admin. When both links are set the
// municipality scope wins.
func (a *Admin) Role() AdminRole {
	switch {
	case a.MunicipalityID != nil:
		return RoleMunicipalityAdmin
	case a.DepartmentID != nil:
		return RoleDepartmentAdmin
	default:
		return RoleSuperAdmin
	}
}

func (a *Admin) IsSuperAdmin() bool {
	return a.DepartmentID == nil && a.MunicipalityID == nil
}

type CreateAdminInput struct {
	Username       string     `json:"username" validate:"required,min=3"`
	Password       string     `json:"password" validate:"required,min=8"`
	Email          *string    `json:"email,omitempty"`
	DepartmentID   *uuid.UUID `json:"department_id"`
	MunicipalityID *uuid.UUID `json:"municipality_id"`
}

type UpdateAdminInput struct {
	Username       string     `json:"username" validate:"required,min=3"`
	Password       *string    `json:"password,omitempty"`
	DepartmentID   *uuid.UUID `json:"department_id"`
	MunicipalityID *uuid.UUID `json:"municipality_id"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
