package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
)

// EventRepository defines the interface for offline event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *entities.Event) error

	// FindByID retrieves an event by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)

	// Update updates an existing event
	Update(ctx context.Context, event *entities.Event) error

	// Delete deletes an event
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves a user's events with filters and pagination
	List(ctx context.Context, filters EventFilters) ([]*entities.Event, int64, error)

	// MarkEmailSent records the reminder email timestamp
	MarkEmailSent(ctx context.Context, eventID uuid.UUID) error
}

// EventFilters represents filter options for listing events
type EventFilters struct {
	UserID    *uuid.UUID
	From      *time.Time
	To        *time.Time
	Source    *entities.EventSource
	Limit     int
	Offset    int
	SortBy    string // "start_time", "created_at"
	SortOrder string // "asc", "desc"
}
