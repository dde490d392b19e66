package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/charism-app/charism-events/internal/accounting"
	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/query"
	"github.com/charism-app/charism-events/internal/service/ports"
)

// maxSearchResults caps search responses; callers needing more paginate
// on their side.
const maxSearchResults = 100

type EventService struct {
	store ports.EventStore
}

func NewEventService(store ports.EventStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if res := accounting.ValidateEventFields(input); !res.Valid {
		return nil, &domain.ValidationError{Violations: res.Errors}
	}

	date, err := accounting.EventDate(input)
	if err != nil {
		return nil, fmt.Errorf("parse event date: %w", err)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                  uuid.New().String(),
		Title:               strings.TrimSpace(input.Title),
		Description:         input.Description,
		Location:            strings.TrimSpace(input.Location),
		Date:                date,
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		Hours:               input.Hours,
		MaxParticipants:     input.MaxParticipants,
		Department:          input.Department,
		Departments:         input.Departments,
		IsForAllDepartments: input.IsForAllDepartments,
		Status:              domain.EventStatusActive,
		IsVisibleToStudents: input.IsVisibleToStudents,
		CreatedBy:           input.CreatedBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.CreateEventInput) (*domain.Event, error) {
	if res := accounting.ValidateEventFields(input); !res.Valid {
		return nil, &domain.ValidationError{Violations: res.Errors}
	}

	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	date, err := accounting.EventDate(input)
	if err != nil {
		return nil, fmt.Errorf("parse event date: %w", err)
	}

	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.Location = strings.TrimSpace(input.Location)
	event.Date = date
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Hours = input.Hours
	event.MaxParticipants = input.MaxParticipants
	event.Department = input.Department
	event.Departments = input.Departments
	event.IsForAllDepartments = input.IsForAllDepartments
	event.IsVisibleToStudents = input.IsVisibleToStudents
	event.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.store.GetByID(ctx, id)
}

func (s *EventService) Stats(ctx context.Context, id string) (domain.AttendanceStats, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.AttendanceStats{}, fmt.Errorf("get event: %w", err)
	}

	return accounting.ComputeAttendanceStats(event), nil
}

type SearchFilters struct {
	Department string
	Status     domain.EventStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (s *EventService) Search(ctx context.Context, term string, filters SearchFilters, role domain.Role, department string) ([]*domain.Event, error) {
	q := query.SearchQuery{
		Filter:          query.BuildEventQuery(role, department),
		Term:            strings.TrimSpace(term),
		ExactDepartment: filters.Department,
		ExactStatus:     filters.Status,
		DateFrom:        filters.DateFrom,
		DateTo:          filters.DateTo,
		Limit:           maxSearchResults,
	}

	events, err := s.store.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}

	if len(events) > maxSearchResults {
		events = events[:maxSearchResults]
	}

	return events, nil
}

// DisablePast hides events whose date has already gone by. Run
// periodically by the scheduler.
func (s *EventService) DisablePast(ctx context.Context) ([]*domain.Event, error) {
	disabled, err := s.store.DisablePast(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("disable past events: %w", err)
	}

	return disabled, nil
}
