package domain

import "github.com/google/uuid"

// AdminWorkStatus is a per-admin dashboard row. Counts are scoped to
// the admin's department when set, else to their municipality. The
// super admin carries no scope and their counts stay zero.
type AdminWorkStatus struct {
	AdminID          uuid.UUID `json:"admin_id"`
	Username         string    `json:"username"`
	DepartmentName   *string   `json:"department_name,omitempty"`
	MunicipalityName *string   `json:"municipality_name,omitempty"`
	Total            int64     `json:"total"`
	Pending          int64     `json:"pending"`
	Resolved         int64     `json:"resolved"`
}
