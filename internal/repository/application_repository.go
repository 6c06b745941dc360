package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazimashinani/kazi-api/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, req *domain.CreateApplicationRequest) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationCols = `id, job_id, employee_id, employee_name, employee_phone, applied_at`

func (r *applicationRepository) Create(ctx context.Context, req *domain.CreateApplicationRequest) (*domain.Application, error) {
	const q = `
		INSERT INTO applications (job_id, employee_id, employee_name, employee_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + applicationCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a domain.Application
	err := r.pool.QueryRow(ctx, q, req.JobID, req.EmployeeID, req.EmployeeName, req.EmployeePhone).Scan(
		&a.ID, &a.JobID, &a.EmployeeID, &a.EmployeeName, &a.EmployeePhone, &a.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	const q = `
		SELECT ` + applicationCols + `
		FROM applications
		WHERE job_id = $1
		ORDER BY applied_at DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.EmployeeID, &a.EmployeeName, &a.EmployeePhone, &a.AppliedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}
