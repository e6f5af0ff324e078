package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aroool/Ai-meeting-summariser/internal/domain/entities"
	"github.com/Aroool/Ai-meeting-summariser/internal/domain/repositories"
)

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) repositories.EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID retrieves an event by its ID
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Update updates an existing event
func (r *eventRepository) Update(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete deletes an event
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Event{}, id).Error
}

// List retrieves a user's events with filters and pagination
func (r *eventRepository) List(ctx context.Context, filters repositories.EventFilters) ([]*entities.Event, int64, error) {
	var events []*entities.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Event{})

	// Apply filters
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.From != nil {
		query = query.Where("start_time >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("start_time < ?", *filters.To)
	}
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	sortBy := "start_time"
	if filters.SortBy != "" {
		sortBy = filters.SortBy
	}
	sortOrder := "ASC"
	if filters.SortOrder != "" {
		sortOrder = filters.SortOrder
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&events).Error
	return events, total, err
}

// MarkEmailSent records the reminder email timestamp
func (r *eventRepository) MarkEmailSent(ctx context.Context, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Event{}).
		Where("id = ?", eventID).
		Update("email_sent_at", time.Now()).
		Error
}
