package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/handler/dto"
	"github.com/charism-app/charism-events/internal/query"
	"github.com/charism-app/charism-events/internal/registration"
	"github.com/charism-app/charism-events/internal/service"
)

// Authentication is handled upstream; the gateway forwards the caller's
// role and department in these headers.
const (
	roleHeader       = "X-Role"
	departmentHeader = "X-Department"
	userHeader       = "X-User-ID"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.CreateEventInput) (*domain.Event, error)
	Stats(ctx context.Context, id string) (domain.AttendanceStats, error)
	Search(ctx context.Context, term string, filters service.SearchFilters, role domain.Role, department string) ([]*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID string, requests []registration.Request) ([]registration.Outcome, error)
}

type AnalyticsSvc interface {
	EventAnalytics(ctx context.Context, eventID string) (*domain.EventAnalytics, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	analyticsService    AnalyticsSvc
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, analyticsService AnalyticsSvc) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		analyticsService:    analyticsService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := toCreateInput(req)
	input.CreatedBy = c.GetHeader(userHeader)

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := domain.ParseRole(c.GetHeader(roleHeader))
	c.JSON(http.StatusCreated, dto.ToEventPayload(event, query.Projection(role)))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, toCreateInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	role := domain.ParseRole(c.GetHeader(roleHeader))
	c.JSON(http.StatusOK, dto.ToEventPayload(event, query.Projection(role)))
}

func (h *Handler) SearchEvents(c *ginext.Context) {
	filters := service.SearchFilters{
		Department: c.Query("department"),
		Status:     domain.EventStatus(c.Query("status")),
	}
	if from, ok := parseDateParam(c, "date_from"); ok {
		filters.DateFrom = from
	} else {
		return
	}
	if to, ok := parseDateParam(c, "date_to"); ok {
		filters.DateTo = to
	} else {
		return
	}

	role := domain.ParseRole(c.GetHeader(roleHeader))
	department := c.GetHeader(departmentHeader)

	events, err := h.eventService.Search(c.Request.Context(), c.Query("q"), filters, role, department)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(events, query.Projection(role)))
}

func (h *Handler) EventStats(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	stats, err := h.eventService.Stats(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Registrations

func (h *Handler) RegisterAttendees(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	requests := make([]registration.Request, 0, len(req.Registrations))
	for _, item := range req.Registrations {
		requests = append(requests, registration.Request{
			UserID:   item.UserID,
			Status:   domain.AttendanceStatus(item.Status),
			Approved: item.RegistrationApproved,
		})
	}

	outcomes, err := h.registrationService.Register(c.Request.Context(), eventID, requests)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{EventID: eventID, Results: outcomes})
}

// Analytics

func (h *Handler) EventAnalytics(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	result, err := h.analyticsService.EventAnalytics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func toCreateInput(req dto.SaveEventRequest) domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Date:                req.Date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Hours:               req.Hours,
		MaxParticipants:     req.MaxParticipants,
		Department:          req.Department,
		Departments:         req.Departments,
		IsForAllDepartments: req.IsForAllDepartments,
		IsVisibleToStudents: req.IsVisibleToStudents,
	}
}

// parseDateParam reports ok=false after writing the error response.
func parseDateParam(c *ginext.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Details: verr.Violations,
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSearchFailed):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrSearchFailed.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
