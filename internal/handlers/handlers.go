package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/response"
	"github.com/kazimashinani/kazi-api/internal/service"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

// Pinger reports store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	authService        service.AuthService
	jobService         service.JobService
	applicationService service.ApplicationService
	db                 Pinger
}

func New(
	authService service.AuthService,
	jobService service.JobService,
	applicationService service.ApplicationService,
	db Pinger,
) *Handlers {
	return &Handlers{
		authService:        authService,
		jobService:         jobService,
		applicationService: applicationService,
		db:                 db,
	}
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Unrecognized errors are logged and reported as a generic server error;
// internal text never reaches the caller.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(w, ve.Message)
	case errors.Is(err, domain.ErrConflict):
		response.Conflict(w, "User already exists with this phone number")
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "Resource not found")
	case errors.Is(err, domain.ErrInvalidCredential):
		response.WriteError(w, http.StatusUnauthorized, "Invalid phone or password", response.CodeUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(w, "You do not have permission to perform this action")
	default:
		logger.ErrorContext(r.Context(), "Unhandled service error", "error", err)
		response.InternalError(w, "Internal server error")
	}
}
