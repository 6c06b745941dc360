package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: 24 * time.Hour,
		},
	}
}

// ---------- Mocks ----------

type mockUserRepo struct {
	nextID  int64
	byPhone map[string]*domain.User
	byID    map[int64]*domain.User
	findErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byPhone: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, req *domain.SignupRequest, passwordHash string) (*domain.User, error) {
	if _, exists := m.byPhone[req.Phone]; exists {
		return nil, domain.ErrConflict
	}
	m.nextID++
	now := time.Now()
	u := &domain.User{
		ID:             m.nextID,
		Name:           req.Name,
		Phone:          req.Phone,
		PasswordHash:   passwordHash,
		Location:       req.Location,
		Role:           req.Role,
		Specialization: req.Specialization,
		JobType:        req.JobType,
		JoinDate:       now,
		LastLogin:      now,
	}
	m.byPhone[u.Phone] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byPhone[phone], nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byID[id], nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id int64, req *domain.UpdateProfileRequest) (*domain.User, error) {
	u := m.byID[id]
	if u == nil {
		return nil, nil
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.Specialization != nil {
		u.Specialization = *req.Specialization
	}
	if req.JobType != nil {
		u.JobType = *req.JobType
	}
	return u, nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u := m.byID[id]
	if u == nil {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) TouchLastLogin(_ context.Context, id int64) (*domain.User, error) {
	u := m.byID[id]
	if u == nil {
		return nil, nil
	}
	u.LastLogin = time.Now()
	return u, nil
}

func (m *mockUserRepo) ListEmployees(_ context.Context, limit int) ([]domain.User, error) {
	var users []domain.User
	for _, u := range m.byID {
		if u.Role == domain.RoleEmployee {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].JoinDate.After(users[j].JoinDate) })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type mockJobRepo struct {
	nextID  int64
	jobs    map[int64]*domain.Job
	listErr error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[int64]*domain.Job)}
}

func (m *mockJobRepo) Create(_ context.Context, req *domain.CreateJobRequest, employerID int64, employerName string) (*domain.Job, error) {
	m.nextID++
	j := &domain.Job{
		ID:           m.nextID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		BusinessType: req.BusinessType,
		EmployerID:   employerID,
		EmployerName: employerName,
		PostedDate:   time.Now(),
		Status:       domain.JobStatusActive,
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *mockJobRepo) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	return m.jobs[id], nil
}

func (m *mockJobRepo) ListActive(_ context.Context, limit int) ([]domain.Job, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var jobs []domain.Job
	for _, j := range m.jobs {
		if j.Status == domain.JobStatusActive {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].PostedDate.After(jobs[j].PostedDate) })
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (m *mockJobRepo) Update(_ context.Context, id int64, req *domain.UpdateJobRequest) (*domain.Job, error) {
	j := m.jobs[id]
	if j == nil {
		return nil, nil
	}
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.Category != nil {
		j.Category = *req.Category
	}
	if req.Phone != nil {
		j.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		j.Whatsapp = *req.Whatsapp
	}
	if req.BusinessType != nil {
		j.BusinessType = *req.BusinessType
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	return j, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

type mockApplicationRepo struct {
	nextID int64
	apps   map[int64]*domain.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[int64]*domain.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, req *domain.CreateApplicationRequest) (*domain.Application, error) {
	m.nextID++
	a := &domain.Application{
		ID:            m.nextID,
		JobID:         req.JobID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		EmployeePhone: req.EmployeePhone,
		AppliedAt:     time.Now(),
	}
	m.apps[a.ID] = a
	return a, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID int64) ([]domain.Application, error) {
	var apps []domain.Application
	for _, a := range m.apps {
		if a.JobID == jobID {
			apps = append(apps, *a)
		}
	}
	return apps, nil
}

type mockEventBus struct {
	subjects []string
}

func (m *mockEventBus) Publish(_ context.Context, subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}

func (m *mockEventBus) Close() error { return nil }
