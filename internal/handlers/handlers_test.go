package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/handlers"
	mw "github.com/kazimashinani/kazi-api/internal/middleware"
	"github.com/kazimashinani/kazi-api/internal/platform/auth"
)

const testSecret = "test-secret"

// ---------- Mocks ----------

type mockAuthService struct {
	user      *domain.User
	token     string
	err       error
	exists    bool
	employees []domain.User
}

func (m *mockAuthService) Signup(context.Context, *domain.SignupRequest) (*domain.User, string, error) {
	return m.user, m.token, m.err
}

func (m *mockAuthService) Signin(context.Context, *domain.SigninRequest) (*domain.User, string, error) {
	return m.user, m.token, m.err
}

func (m *mockAuthService) PhoneExists(context.Context, string) (bool, error) {
	return m.exists, m.err
}

func (m *mockAuthService) UpdateProfile(context.Context, int64, *domain.UpdateProfileRequest) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) ChangePassword(context.Context, int64, *domain.ChangePasswordRequest) error {
	return m.err
}

func (m *mockAuthService) ListEmployees(context.Context) ([]domain.User, error) {
	return m.employees, m.err
}

type mockJobService struct {
	job            *domain.Job
	jobs           []domain.Job
	err            error
	lastEmployerID int64
}

func (m *mockJobService) ListActive(context.Context) ([]domain.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobService) Create(_ context.Context, employerID int64, _ *domain.CreateJobRequest) (*domain.Job, error) {
	m.lastEmployerID = employerID
	return m.job, m.err
}

func (m *mockJobService) Update(context.Context, int64, int64, *domain.UpdateJobRequest) (*domain.Job, error) {
	return m.job, m.err
}

func (m *mockJobService) Delete(context.Context, int64, int64) error {
	return m.err
}

type mockApplicationService struct {
	app  *domain.Application
	apps []domain.Application
	err  error
}

func (m *mockApplicationService) Create(context.Context, *domain.CreateApplicationRequest) (*domain.Application, error) {
	return m.app, m.err
}

func (m *mockApplicationService) ListByJob(context.Context, int64) ([]domain.Application, error) {
	return m.apps, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

// ---------- Helpers ----------

func testUser() *domain.User {
	return &domain.User{
		ID:             3,
		Name:           "Amina Wanjiru",
		Phone:          "254712345678",
		PasswordHash:   "$argon2id$v=19$m=65536,t=1,p=2$c2FsdHNhbHQ$ZGlnZXN0ZGlnZXN0",
		Location:       "Nakuru",
		Role:           domain.RoleEmployee,
		Specialization: "plumbing",
		JoinDate:       time.Now(),
		LastLogin:      time.Now(),
	}
}

func testJob() *domain.Job {
	return &domain.Job{
		ID:           7,
		Title:        "Mason needed",
		Description:  "Three week contract",
		Location:     "Kisumu",
		Category:     domain.DefaultCategory,
		Phone:        "254733111222",
		BusinessType: domain.DefaultBusinessType,
		EmployerID:   5,
		EmployerName: "Juma Otieno",
		PostedDate:   time.Now(),
		Status:       domain.JobStatusActive,
	}
}

// newTestRouter mirrors the production route layout.
func newTestRouter(h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/signin", h.Signin)
			r.Post("/check-phone", h.CheckPhone)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth(testSecret))
				r.Put("/profile", h.UpdateProfile)
				r.Put("/password", h.ChangePassword)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.ListJobs)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth(testSecret))
				r.With(mw.RequireRole(domain.RoleEmployer)).Post("/", h.CreateJob)
				r.Put("/{id}", h.UpdateJob)
				r.Delete("/{id}", h.DeleteJob)
			})
		})

		r.Get("/employees", h.ListEmployees)

		r.Route("/applications", func(r chi.Router) {
			r.Post("/", h.CreateApplication)
			r.Get("/job/{id}", h.ListApplicationsByJob)
		})
	})

	return r
}

func bearerToken(sub int64, role string) (string, error) {
	return auth.NewAccessToken(sub, "254712345678", role, testSecret, time.Hour)
}
