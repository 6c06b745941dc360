package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/handlers"
)

func TestCreateApplicationHandler(t *testing.T) {
	t.Parallel()

	appSvc := &mockApplicationService{app: &domain.Application{
		ID:            11,
		JobID:         7,
		EmployeeID:    3,
		EmployeeName:  "Amina Wanjiru",
		EmployeePhone: "254712345678",
	}}
	h := handlers.New(&mockAuthService{}, &mockJobService{}, appSvc, &mockPinger{})
	router := newTestRouter(h)

	body := bytes.NewBufferString(`{"jobId":7,"employeeId":3,"employeeName":"Amina Wanjiru","employeePhone":"0712345678"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"application"`) {
		t.Fatalf("missing application in response: %s", rec.Body.String())
	}
}

func TestCreateApplicationHandler_ValidationError(t *testing.T) {
	t.Parallel()

	appSvc := &mockApplicationService{err: domain.NewValidationError("Please provide all required application details")}
	h := handlers.New(&mockAuthService{}, &mockJobService{}, appSvc, &mockPinger{})
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "required application details") {
		t.Fatalf("validation message not surfaced: %s", rec.Body.String())
	}
}

func TestListApplicationsByJob(t *testing.T) {
	t.Parallel()

	appSvc := &mockApplicationService{}
	h := handlers.New(&mockAuthService{}, &mockJobService{}, appSvc, &mockPinger{})
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/job/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"applications":[]`) {
		t.Fatalf("empty listing must serialize as [], got: %s", rec.Body.String())
	}
}

func TestListApplicationsByJob_InvalidID(t *testing.T) {
	t.Parallel()

	h := handlers.New(&mockAuthService{}, &mockJobService{}, &mockApplicationService{}, &mockPinger{})
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/applications/job/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealth_DatabaseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pingErr error
		want    string
	}{
		{"connected", nil, `"database":"connected"`},
		{"disconnected", errors.New("pool closed"), `"database":"disconnected"`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.New(&mockAuthService{}, &mockJobService{}, &mockApplicationService{}, &mockPinger{err: tc.pingErr})
			router := newTestRouter(h)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body = %s, want %s", rec.Body.String(), tc.want)
			}
		})
	}
}

func TestRootBanner(t *testing.T) {
	t.Parallel()

	h := handlers.New(&mockAuthService{}, &mockJobService{}, &mockApplicationService{}, &mockPinger{})
	router := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Kazi API is running") {
		t.Fatalf("missing banner message: %s", rec.Body.String())
	}
}
