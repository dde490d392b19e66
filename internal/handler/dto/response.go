package dto

import (
	"time"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/registration"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type RegisterResponse struct {
	EventID string                 `json:"event_id"`
	Results []registration.Outcome `json:"results"`
}

type SearchResponse struct {
	Count  int                      `json:"count"`
	Events []map[string]interface{} `json:"events"`
}

// ToEventPayload shapes one event according to the caller's projection;
// fields outside the projection never reach the wire.
func ToEventPayload(e *domain.Event, fields []string) map[string]interface{} {
	full := map[string]interface{}{
		"id":                     e.ID,
		"title":                  e.Title,
		"description":            e.Description,
		"location":               e.Location,
		"date":                   e.Date.Format("2006-01-02"),
		"start_time":             e.StartTime,
		"end_time":               e.EndTime,
		"hours":                  e.Hours,
		"max_participants":       e.MaxParticipants,
		"department":             e.Department,
		"departments":            e.Departments,
		"is_for_all_departments": e.IsForAllDepartments,
		"status":                 string(e.Status),
		"is_visible_to_students": e.IsVisibleToStudents,
		"created_by":             e.CreatedBy,
		"created_at":             e.CreatedAt.Format(time.RFC3339),
		"updated_at":             e.UpdatedAt.Format(time.RFC3339),
	}

	payload := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if v, ok := full[f]; ok {
			payload[f] = v
		}
	}
	return payload
}

func ToSearchResponse(events []*domain.Event, fields []string) SearchResponse {
	payloads := make([]map[string]interface{}, 0, len(events))
	for _, e := range events {
		payloads = append(payloads, ToEventPayload(e, fields))
	}
	return SearchResponse{Count: len(payloads), Events: payloads}
}
