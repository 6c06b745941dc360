package domain

import (
	"strings"
	"time"

	"github.com/kazimashinani/kazi-api/internal/platform/phone"
)

type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Phone        string    `json:"phone"`
	Whatsapp     string    `json:"whatsapp"`
	BusinessType string    `json:"businessType"`
	EmployerID   int64     `json:"employerId"`
	EmployerName string    `json:"employerName"`
	PostedDate   time.Time `json:"postedDate"`
	Status       string    `json:"status"`
}

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

const (
	DefaultCategory     = "general"
	DefaultBusinessType = "Individual"
)

// OwnedBy is the ownership guard: mutation of a job is permitted only to
// the employer that posted it.
func (j *Job) OwnedBy(userID int64) bool {
	return j.EmployerID == userID
}

type CreateJobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Category     string `json:"category,omitempty"`
	Phone        string `json:"phone"`
	Whatsapp     string `json:"whatsapp,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
}

func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Phone = phone.Normalize(r.Phone)
	if r.Whatsapp != "" {
		r.Whatsapp = phone.Normalize(r.Whatsapp)
	}
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	if r.BusinessType == "" {
		r.BusinessType = DefaultBusinessType
	}
}

func (r *CreateJobRequest) Validate() error {
	if r.Title == "" || r.Description == "" || r.Location == "" || r.Phone == "" {
		return NewValidationError("title, description, location and phone are required")
	}
	return nil
}

type UpdateJobRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	Category     *string `json:"category,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Whatsapp     *string `json:"whatsapp,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateJobRequest) Normalize() {
	if r.Phone != nil {
		cleaned := phone.Normalize(*r.Phone)
		r.Phone = &cleaned
	}
	if r.Whatsapp != nil {
		cleaned := phone.Normalize(*r.Whatsapp)
		r.Whatsapp = &cleaned
	}
}

func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return NewValidationError("title must not be empty")
	}
	if r.Description != nil && *r.Description == "" {
		return NewValidationError("description must not be empty")
	}
	if r.Phone != nil && *r.Phone == "" {
		return NewValidationError("phone must not be empty")
	}
	if r.Status != nil && *r.Status != JobStatusActive && *r.Status != JobStatusClosed {
		return NewValidationError("status must be active or closed")
	}
	return nil
}
