package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/events"
	"github.com/kazimashinani/kazi-api/internal/repository"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

// ListLimit caps every public listing endpoint.
const ListLimit = 50

type JobService interface {
	ListActive(ctx context.Context) ([]domain.Job, error)
	Create(ctx context.Context, employerID int64, req *domain.CreateJobRequest) (*domain.Job, error)
	Update(ctx context.Context, jobID, requesterID int64, req *domain.UpdateJobRequest) (*domain.Job, error)
	Delete(ctx context.Context, jobID, requesterID int64) error
}

type jobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	eventBus events.Publisher
}

func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, eventBus events.Publisher) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		eventBus: eventBus,
	}
}

func (s *jobService) ListActive(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) Create(ctx context.Context, employerID int64, req *domain.CreateJobRequest) (*domain.Job, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The posting identity comes from the authenticated subject, never from
	// the request body.
	employer, err := s.userRepo.FindByID(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employer: %w", err)
	}
	if employer == nil {
		return nil, domain.ErrInvalidCredential
	}
	if employer.Role != domain.RoleEmployer {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobRepo.Create(ctx, req, employer.ID, employer.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.eventBus.Publish(ctx, events.JobCreated, events.JobCreatedEvent{
		JobID:      job.ID,
		EmployerID: job.EmployerID,
		Title:      job.Title,
		Category:   job.Category,
		Location:   job.Location,
		PostedAt:   job.PostedDate,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish job.created event", "error", err, "job_id", job.ID)
	}

	return job, nil
}

func (s *jobService) Update(ctx context.Context, jobID, requesterID int64, req *domain.UpdateJobRequest) (*domain.Job, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Existence is checked before ownership so that a non-owner probing a
	// missing id learns nothing beyond NotFound.
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if !job.OwnedBy(requesterID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.jobRepo.Update(ctx, jobID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.eventBus.Publish(ctx, events.JobUpdated, events.JobUpdatedEvent{
		JobID:      updated.ID,
		EmployerID: updated.EmployerID,
		UpdatedAt:  time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish job.updated event", "error", err, "job_id", updated.ID)
	}

	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, jobID, requesterID int64) error {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return domain.ErrNotFound
	}
	if !job.OwnedBy(requesterID) {
		return domain.ErrForbidden
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	if err := s.eventBus.Publish(ctx, events.JobDeleted, events.JobDeletedEvent{
		JobID:      job.ID,
		EmployerID: job.EmployerID,
		DeletedAt:  time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish job.deleted event", "error", err, "job_id", job.ID)
	}

	return nil
}
