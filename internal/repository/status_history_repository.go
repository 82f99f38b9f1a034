package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"civic-redressal/internal/domain"
)

type StatusHistoryRepository interface {
	Create(ctx context.Context, history *domain.StatusHistory) error
	ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.StatusHistory, error)
	CountByComplaint(ctx context.Context, complaintID uuid.UUID) (int64, error)
}

type statusHistoryRepository struct {
	db *sqlx.DB
}

func NewStatusHistoryRepository(db *sqlx.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

func (r *statusHistoryRepository) Create(ctx context.Context, history *domain.StatusHistory) error {
	query := `
		INSERT INTO status_history (id, complaint_id, status, remarks, admin_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		history.ID, history.ComplaintID, history.Status, history.Remarks, history.AdminID,
	).Scan(&history.CreatedAt)
}

func (r *statusHistoryRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]domain.StatusHistory, error) {
	var entries []domain.StatusHistory
	query := `
		SELECT h.id, h.complaint_id, h.status, h.remarks, h.admin_id, h.created_at,
			COALESCE(a.username, '') AS admin_username
		FROM status_history h
		LEFT JOIN admins a ON a.id = h.admin_id
		WHERE h.complaint_id = $1
		ORDER BY h.created_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, complaintID)
	return entries, err
}

func (r *statusHistoryRepository) CountByComplaint(ctx context.Context, complaintID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM status_history WHERE complaint_id = $1`
	err := r.db.GetContext(ctx, &count, query, complaintID)
	return count, err
}
