package service

import (
	"context"
	"fmt"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/events"
	"github.com/kazimashinani/kazi-api/internal/repository"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

type ApplicationService interface {
	Create(ctx context.Context, req *domain.CreateApplicationRequest) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	eventBus        events.Publisher
}

func NewApplicationService(applicationRepo repository.ApplicationRepository, eventBus events.Publisher) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		eventBus:        eventBus,
	}
}

func (s *applicationService) Create(ctx context.Context, req *domain.CreateApplicationRequest) (*domain.Application, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if err := s.eventBus.Publish(ctx, events.ApplicationCreated, events.ApplicationCreatedEvent{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		EmployeeID:    app.EmployeeID,
		AppliedAt:     app.AppliedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish application.created event", "error", err, "application_id", app.ID)
	}

	return app, nil
}

func (s *applicationService) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}
