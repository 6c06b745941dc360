package domain

import (
	"strings"
	"time"

	"github.com/kazimashinani/kazi-api/internal/platform/phone"
)

type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"jobId"`
	EmployeeID    int64     `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	EmployeePhone string    `json:"employeePhone"`
	AppliedAt     time.Time `json:"appliedAt"`
}

type CreateApplicationRequest struct {
	JobID         int64  `json:"jobId"`
	EmployeeID    int64  `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	EmployeePhone string `json:"employeePhone"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	r.EmployeePhone = phone.Normalize(r.EmployeePhone)
}

func (r *CreateApplicationRequest) Validate() error {
	if r.JobID == 0 || r.EmployeeID == 0 {
		return NewValidationError("jobId and employeeId are required")
	}
	if r.EmployeeName == "" || r.EmployeePhone == "" {
		return NewValidationError("employeeName and employeePhone are required")
	}
	return nil
}
