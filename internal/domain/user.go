package domain

import (
	"strings"
	"time"

	"github.com/kazimashinani/kazi-api/internal/platform/phone"
)

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	PasswordHash   string    `json:"-"`
	Location       string    `json:"location"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization"`
	JobType        string    `json:"jobType"`
	JoinDate       time.Time `json:"joinDate"`
	LastLogin      time.Time `json:"lastLogin"`
}

// Valid user roles. Role is immutable after creation.
const (
	RoleEmployee = "employee"
	RoleEmployer = "employer"
)

var validRoles = map[string]bool{
	RoleEmployee: true,
	RoleEmployer: true,
}

func IsValidRole(role string) bool {
	return validRoles[role]
}

// UserInfo is the public projection of a user; the password digest never
// appears here.
type UserInfo struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization"`
	JobType        string    `json:"jobType"`
	JoinDate       time.Time `json:"joinDate"`
	LastLogin      time.Time `json:"lastLogin"`
}

func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:             u.ID,
		Name:           u.Name,
		Phone:          u.Phone,
		Location:       u.Location,
		Role:           u.Role,
		Specialization: u.Specialization,
		JobType:        u.JobType,
		JoinDate:       u.JoinDate,
		LastLogin:      u.LastLogin,
	}
}

type SignupRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Specialization string `json:"specialization,omitempty"`
	JobType        string `json:"jobType,omitempty"`
}

func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Phone = phone.Normalize(r.Phone)

	// Role-specific fields are blanked for the other role.
	switch r.Role {
	case RoleEmployee:
		r.JobType = ""
	case RoleEmployer:
		r.Specialization = ""
	}
}

func (r *SignupRequest) Validate() error {
	if r.Name == "" || r.Phone == "" || r.Location == "" || r.Password == "" || r.Role == "" {
		return NewValidationError("name, phone, location, password and role are required")
	}
	if !IsValidRole(r.Role) {
		return NewValidationError("role must be employee or employer")
	}
	return nil
}

type SigninRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r *SigninRequest) Normalize() {
	r.Phone = phone.Normalize(r.Phone)
}

func (r *SigninRequest) Validate() error {
	if r.Phone == "" || r.Password == "" {
		return NewValidationError("phone and password are required")
	}
	return nil
}

type CheckPhoneRequest struct {
	Phone string `json:"phone"`
}

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Location       *string `json:"location,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	JobType        *string `json:"jobType,omitempty"`
}

// ClampToRole drops the field belonging to the other role, the same rule
// signup applies. Role itself is immutable, so the caller supplies the
// stored role.
func (r *UpdateProfileRequest) ClampToRole(role string) {
	switch role {
	case RoleEmployee:
		r.JobType = nil
	case RoleEmployer:
		r.Specialization = nil
	}
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Location != nil {
		trimmed := strings.TrimSpace(*r.Location)
		r.Location = &trimmed
	}
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return NewValidationError("name must not be empty")
	}
	if r.Location != nil && *r.Location == "" {
		return NewValidationError("location must not be empty")
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" || r.NewPassword == "" {
		return NewValidationError("currentPassword and newPassword are required")
	}
	return nil
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *UserInfo `json:"user"`
}
