package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"civic-redressal/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]domain.Admin, error)
	ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Admin, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]domain.Admin, error)
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string, passwordChanged bool) error
}

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

const adminColumns = `
	a.id, a.username, a.password_hash, a.password_changed,
	a.department_id, a.municipality_id, a.created_at, a.updated_at,
	d.name AS department_name, m.name AS municipality_name`

const adminJoins = `
	FROM admins a
	LEFT JOIN departments d ON d.id = a.department_id
	LEFT JOIN municipalities m ON m.id = a.municipality_id`

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (id, username, password_hash, password_changed, department_id, municipality_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.PasswordChanged,
		admin.DepartmentID, admin.MunicipalityID,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	var admin domain.Admin
	query := `SELECT ` + adminColumns + adminJoins + ` WHERE a.id = $1`

	err := r.db.GetContext(ctx, &admin, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	query := `SELECT ` + adminColumns + adminJoins + ` WHERE a.username = $1`

	err := r.db.GetContext(ctx, &admin, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`
	err := r.db.GetContext(ctx, &exists, query, username)
	return exists, err
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	query := `
		UPDATE admins
		SET username = $2, password_hash = $3, password_changed = $4,
			department_id = $5, municipality_id = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.PasswordChanged,
		admin.DepartmentID, admin.MunicipalityID,
	).Scan(&admin.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("admin not found")
	}
	return err
}

func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM admins WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *adminRepository) GetAll(ctx context.Context) ([]domain.Admin, error) {
	var admins []domain.Admin
	query := `SELECT ` + adminColumns + adminJoins + ` ORDER BY a.created_at ASC`

	err := r.db.SelectContext(ctx, &admins, query)
	return admins, err
}

func (r *adminRepository) ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Admin, error) {
	var admins []domain.Admin
	query := `SELECT ` + adminColumns + adminJoins + ` WHERE a.municipality_id = $1 ORDER BY a.created_at ASC`

	err := r.db.SelectContext(ctx, &admins, query, municipalityID)
	return admins, err
}

func (r *adminRepository) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]domain.Admin, error) {
	var admins []domain.Admin
	query := `SELECT ` + adminColumns + adminJoins + ` WHERE a.department_id = $1 ORDER BY a.created_at ASC`

	err := r.db.SelectContext(ctx, &admins, query, departmentID)
	return admins, err
}

func (r *adminRepository) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string, passwordChanged bool) error {
	query := `
		UPDATE admins
		SET password_hash = $2, password_changed = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	var dummy sql.NullTime
	err := r.db.QueryRowxContext(ctx, query, id, passwordHash, passwordChanged).Scan(&dummy)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("admin not found")
	}
	return err
}
