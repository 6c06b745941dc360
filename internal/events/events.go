package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kazimashinani/kazi-api/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Event subjects
const (
	UserRegistered     = "user.registered"
	JobCreated         = "job.created"
	JobUpdated         = "job.updated"
	JobDeleted         = "job.deleted"
	ApplicationCreated = "application.created"
)

// Event payloads
type UserRegisteredEvent struct {
	UserID       int64     `json:"user_id"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

type JobCreatedEvent struct {
	JobID      int64     `json:"job_id"`
	EmployerID int64     `json:"employer_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	PostedAt   time.Time `json:"posted_at"`
}

type JobUpdatedEvent struct {
	JobID      int64     `json:"job_id"`
	EmployerID int64     `json:"employer_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type JobDeletedEvent struct {
	JobID      int64     `json:"job_id"`
	EmployerID int64     `json:"employer_id"`
	DeletedAt  time.Time `json:"deleted_at"`
}

type ApplicationCreatedEvent struct {
	ApplicationID int64     `json:"application_id"`
	JobID         int64     `json:"job_id"`
	EmployeeID    int64     `json:"employee_id"`
	AppliedAt     time.Time `json:"applied_at"`
}
