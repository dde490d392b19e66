package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/handler/dto"
	hmocks "github.com/charism-app/charism-events/internal/handler/mocks"
	"github.com/charism-app/charism-events/internal/registration"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRegistrationSvc, *hmocks.MockAnalyticsSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)
	analyticsSvc := hmocks.NewMockAnalyticsSvc(t)

	h := NewHandler(eventSvc, registrationSvc, analyticsSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.GET("/events/search", h.SearchEvents)
		api.GET("/events/:id/stats", h.EventStats)
		api.POST("/events/:id/register", h.RegisterAttendees)
		api.GET("/events/:id/analytics", h.EventAnalytics)
	}

	return eventSvc, registrationSvc, analyticsSvc, r
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:                  uuid.New().String(),
		Title:               "Beach Cleanup",
		Description:         "Monthly shore cleanup",
		Location:            "East Shore",
		Date:                time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		StartTime:           "08:00",
		EndTime:             "12:00",
		Hours:               4,
		MaxParticipants:     30,
		Status:              domain.EventStatusActive,
		IsVisibleToStudents: true,
		CreatedBy:           "staff-1",
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	event := sampleEvent()
	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.SaveEventRequest{
		Title:     "Beach Cleanup",
		Location:  "East Shore",
		Date:      "2026-09-12",
		StartTime: "08:00",
		EndTime:   "12:00",
		Hours:     4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Beach Cleanup", resp["title"])
	// caller sent no role header, so audit fields are projected away
	assert.NotContains(t, resp, "created_by")
}

func TestHandler_CreateEvent_AdminSeesAuditFields(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(sampleEvent(), nil)

	body, _ := json.Marshal(dto.SaveEventRequest{Title: "X", Location: "Y", Date: "2026-09-12", StartTime: "08:00", EndTime: "12:00"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "Admin")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "staff-1", resp["created_by"])
}

func TestHandler_CreateEvent_ValidationErrorListsDetails(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	verr := &domain.ValidationError{Violations: []string{
		"title must not be empty",
		"date \"nope\" is not a valid calendar date (expected YYYY-MM-DD)",
		"start time \"25:99\" must match HH:MM (24-hour)",
	}}
	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, verr)

	body := []byte(`{"title":"","date":"nope","start_time":"25:99"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Details, 3)
}

func TestHandler_UpdateEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrEventNotFound)

	body, _ := json.Marshal(dto.SaveEventRequest{Title: "X", Location: "Y", Date: "2026-09-12", StartTime: "08:00", EndTime: "12:00"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Search ---

func TestHandler_SearchEvents_PassesRoleAndFilters(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().
		Search(mock.Anything, "cleanup", mock.Anything, domain.RoleStaff, "CS").
		Return([]*domain.Event{sampleEvent()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/search?q=cleanup&department=CS&date_from=2026-01-01", nil)
	req.Header.Set("X-Role", "Staff")
	req.Header.Set("X-Department", "CS")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestHandler_SearchEvents_BadDateParam(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/search?date_from=12-31-2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchEvents_Failure(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().
		Search(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrSearchFailed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "event search failed", resp.Error)
}

// --- Stats ---

func TestHandler_EventStats_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	eventSvc.EXPECT().Stats(mock.Anything, id).Return(domain.AttendanceStats{
		Total:          3,
		Approved:       2,
		Pending:        1,
		AvailableSlots: domain.RemainingSlots(8),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+id+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":3,"approved":2,"pending":1,"disapproved":0,"attended":0,"available_slots":8,"is_full":false}`, w.Body.String())
}

func TestHandler_EventStats_UnlimitedSentinel(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	eventSvc.EXPECT().Stats(mock.Anything, id).Return(domain.AttendanceStats{
		Total:          1,
		AvailableSlots: domain.UnlimitedSlots(),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+id+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available_slots":"Unlimited"`)
}

func TestHandler_EventStats_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	eventSvc.EXPECT().Stats(mock.Anything, id).Return(domain.AttendanceStats{}, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+id+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Registration ---

func TestHandler_RegisterAttendees_Success(t *testing.T) {
	_, registrationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	outcomes := []registration.Outcome{
		{UserID: "u1", Status: registration.ResultSuccess},
		{UserID: "u2", Status: registration.ResultAlreadyRegistered},
		{UserID: "", Status: registration.ResultError, Message: "user id is required"},
	}
	registrationSvc.EXPECT().Register(mock.Anything, id, mock.Anything).Return(outcomes, nil)

	body := []byte(`{"registrations":[{"user_id":"u1"},{"user_id":"u2"},{"user_id":""}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+id+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, registration.ResultSuccess, resp.Results[0].Status)
	assert.Equal(t, registration.ResultAlreadyRegistered, resp.Results[1].Status)
	assert.Equal(t, registration.ResultError, resp.Results[2].Status)
}

func TestHandler_RegisterAttendees_MissingBody(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/register", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Analytics ---

func TestHandler_EventAnalytics_Success(t *testing.T) {
	_, _, analyticsSvc, r := setupRouter(t)

	id := uuid.New().String()
	analyticsSvc.EXPECT().EventAnalytics(mock.Anything, id).Return(&domain.EventAnalytics{
		EventID:             id,
		Title:               "Beach Cleanup",
		TotalRegistrations:  2,
		DepartmentBreakdown: map[string]int{"CS": 2},
		YearBreakdown:       map[string]int{"2026": 1, "2027": 1},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+id+"/analytics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.EventAnalytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalRegistrations)
	assert.Equal(t, map[string]int{"CS": 2}, resp.DepartmentBreakdown)
}

func TestHandler_EventAnalytics_NotFound(t *testing.T) {
	_, _, analyticsSvc, r := setupRouter(t)

	id := uuid.New().String()
	analyticsSvc.EXPECT().EventAnalytics(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+id+"/analytics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
