package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"civic-redressal/internal/domain"
)

type MunicipalityRepository interface {
	Create(ctx context.Context, municipality *domain.Municipality) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Municipality, error)
	GetByName(ctx context.Context, name string) (*domain.Municipality, error)
	GetAll(ctx context.Context) ([]domain.Municipality, error)
}

type municipalityRepository struct {
	db *sqlx.DB
}

func NewMunicipalityRepository(db *sqlx.DB) MunicipalityRepository {
	return &municipalityRepository{db: db}
}

func (r *municipalityRepository) Create(ctx context.Context, municipality *domain.Municipality) error {
	query := `
		INSERT INTO municipalities (id, name, district)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		municipality.ID, municipality.Name, municipality.District,
	).Scan(&municipality.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Already seeded; keep the call idempotent.
		return nil
	}
	return err
}

func (r *municipalityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Municipality, error) {
	var municipality domain.Municipality
	query := `SELECT * FROM municipalities WHERE id = $1`

	err := r.db.GetContext(ctx, &municipality, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &municipality, nil
}

func (r *municipalityRepository) GetByName(ctx context.Context, name string) (*domain.Municipality, error) {
	var municipality domain.Municipality
	query := `SELECT * FROM municipalities WHERE name = $1`

	err := r.db.GetContext(ctx, &municipality, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &municipality, nil
}

func (r *municipalityRepository) GetAll(ctx context.Context) ([]domain.Municipality, error) {
	var municipalities []domain.Municipality
	query := `SELECT * FROM municipalities ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &municipalities, query)
	return municipalities, err
}
