package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kazimashinani/kazi-api/internal/domain"
)

type JobRepository interface {
	Create(ctx context.Context, req *domain.CreateJobRequest, employerID int64, employerName string) (*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	ListActive(ctx context.Context, limit int) ([]domain.Job, error)
	Update(ctx context.Context, id int64, req *domain.UpdateJobRequest) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobCols = `id, title, description, location, category, phone, whatsapp, business_type, employer_id, employer_name, posted_date, status`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Category, &j.Phone,
		&j.Whatsapp, &j.BusinessType, &j.EmployerID, &j.EmployerName, &j.PostedDate, &j.Status,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepository) Create(ctx context.Context, req *domain.CreateJobRequest, employerID int64, employerName string) (*domain.Job, error) {
	const q = `
		INSERT INTO jobs (title, description, location, category, phone, whatsapp, business_type, employer_id, employer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + jobCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanJob(r.pool.QueryRow(ctx, q,
		req.Title, req.Description, req.Location, req.Category, req.Phone,
		req.Whatsapp, req.BusinessType, employerID, employerName,
	))
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	const q = `SELECT ` + jobCols + ` FROM jobs WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	j, err := scanJob(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return j, err
}

func (r *jobRepository) ListActive(ctx context.Context, limit int) ([]domain.Job, error) {
	const q = `
		SELECT ` + jobCols + `
		FROM jobs
		WHERE status = $1
		ORDER BY posted_date DESC
		LIMIT $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, domain.JobStatusActive, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Location, &j.Category, &j.Phone,
			&j.Whatsapp, &j.BusinessType, &j.EmployerID, &j.EmployerName, &j.PostedDate, &j.Status,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, id int64, req *domain.UpdateJobRequest) (*domain.Job, error) {
	const q = `
		UPDATE jobs
		SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			location = COALESCE($4, location),
			category = COALESCE($5, category),
			phone = COALESCE($6, phone),
			whatsapp = COALESCE($7, whatsapp),
			business_type = COALESCE($8, business_type),
			status = COALESCE($9, status)
		WHERE id = $1
		RETURNING ` + jobCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	j, err := scanJob(r.pool.QueryRow(ctx, q, id,
		req.Title, req.Description, req.Location, req.Category,
		req.Phone, req.Whatsapp, req.BusinessType, req.Status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return j, err
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM jobs WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
