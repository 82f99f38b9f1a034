package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"civic-redressal/internal/domain"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Complaint, error)
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Complaint, error)
	// UpdateStatusWithHistory applies the status change and appends the
	// history row in one transaction so a crash can never leave the
	// complaint updated without its audit entry.
	UpdateStatusWithHistory(ctx context.Context, id uuid.UUID, status domain.Status, history *domain.StatusHistory) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error)
	CountByDepartmentAndStatus(ctx context.Context, departmentID uuid.UUID, status domain.Status) (int64, error)
	CountByMunicipality(ctx context.Context, municipalityID uuid.UUID) (int64, error)
	CountByMunicipalityAndStatus(ctx context.Context, municipalityID uuid.UUID, status domain.Status) (int64, error)
}

type complaintRepository struct {
	db *sqlx.DB
}

func NewComplaintRepository(db *sqlx.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

const complaintColumns = `
	c.id, c.title, c.description, c.category, c.status,
	c.latitude, c.longitude, c.address, c.image_path,
	c.user_id, c.department_id, c.municipality_id, c.city_name,
	c.created_at, c.updated_at,
	u.username AS owner_username, u.full_name AS owner_full_name,
	u.mobile AS owner_mobile, u.email AS owner_email,
	COALESCE(d.name, '') AS department_name,
	COALESCE(m.name, '') AS municipality_name`

const complaintJoins = `
	FROM complaints c
	JOIN users u ON u.id = c.user_id
	LEFT JOIN departments d ON d.id = c.department_id
	LEFT JOIN municipalities m ON m.id = c.municipality_id`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	query := `
		INSERT INTO complaints (id, title, description, category, status, latitude, longitude,
			address, image_path, user_id, department_id, municipality_id, city_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		complaint.ID, complaint.Title, complaint.Description, complaint.Category, complaint.Status,
		complaint.Latitude, complaint.Longitude, complaint.Address, complaint.ImagePath,
		complaint.UserID, complaint.DepartmentID, complaint.MunicipalityID, complaint.CityName,
	).Scan(&complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	var complaint domain.Complaint
	query := `SELECT ` + complaintColumns + complaintJoins + ` WHERE c.id = $1`

	err := r.db.GetContext(ctx, &complaint, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	query := `SELECT ` + complaintColumns + complaintJoins + ` WHERE c.user_id = $1 ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &complaints, query, userID)
	return complaints, err
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	query := `SELECT ` + complaintColumns + complaintJoins + ` ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &complaints, query)
	return complaints, err
}

func (r *complaintRepository) ListByMunicipality(ctx context.Context, municipalityID uuid.UUID) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	query := `SELECT ` + complaintColumns + complaintJoins + ` WHERE c.municipality_id = $1 ORDER BY c.created_at DESC`

	err := r.db.SelectContext(ctx, &complaints, query, municipalityID)
	return complaints, err
}

func (r *complaintRepository) UpdateStatusWithHistory(ctx context.Context, id uuid.UUID, status domain.Status, history *domain.StatusHistory) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE complaints SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO status_history (id, complaint_id, status, remarks, admin_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		history.ID, history.ComplaintID, history.Status, history.Remarks, history.AdminID,
	).Scan(&history.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM complaints WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *complaintRepository) CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM complaints WHERE department_id = $1`
	err := r.db.GetContext(ctx, &count, query, departmentID)
	return count, err
}

func (r *complaintRepository) CountByDepartmentAndStatus(ctx context.Context, departmentID uuid.UUID, status domain.Status) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM complaints WHERE department_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, departmentID, status)
	return count, err
}

func (r *complaintRepository) CountByMunicipality(ctx context.Context, municipalityID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM complaints WHERE municipality_id = $1`
	err := r.db.GetContext(ctx, &count, query, municipalityID)
	return count, err
}

func (r *complaintRepository) CountByMunicipalityAndStatus(ctx context.Context, municipalityID uuid.UUID, status domain.Status) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM complaints WHERE municipality_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, municipalityID, status)
	return count, err
}
