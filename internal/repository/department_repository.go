package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"civic-redressal/internal/domain"
)

type DepartmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	// GetOrCreate races safely on first use: the insert is an upsert
	// keyed on the unique name, so concurrent callers converge on a
	// single row.
	GetOrCreate(ctx context.Context, name string) (*domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
}

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var dept domain.Department
	query := `SELECT * FROM departments WHERE id = $1`

	err := r.db.GetContext(ctx, &dept, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	var dept domain.Department
	query := `SELECT * FROM departments WHERE name = $1`

	err := r.db.GetContext(ctx, &dept, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetOrCreate(ctx context.Context, name string) (*domain.Department, error) {
	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, uuid.New(), name); err != nil {
		return nil, err
	}

	return r.GetByName(ctx, name)
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	query := `SELECT * FROM departments ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &departments, query)
	return departments, err
}
