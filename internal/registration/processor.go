// Package registration applies batches of registration requests to one
// event's attendance list.
package registration

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charism-app/charism-events/internal/domain"
)

// batchSize bounds how many entries are constructed concurrently at a
// time. Batch boundaries carry no meaning for the result: outcomes are
// equivalent to sequential processing in input order.
const batchSize = 10

type Request struct {
	UserID   string
	Status   domain.AttendanceStatus // defaults to Pending
	Approved *bool                   // defaults to false
}

type Result string

const (
	ResultSuccess           Result = "success"
	ResultAlreadyRegistered Result = "already_registered"
	ResultError             Result = "error"
)

type Outcome struct {
	UserID  string `json:"user_id"`
	Status  Result `json:"status"`
	Message string `json:"message,omitempty"`
}

type prepared struct {
	entry domain.AttendanceEntry
	err   error
}

// ApplyRegistrations mutates event.Attendance in place and returns one
// outcome per request, in request order. A request for a user already on
// the list leaves the list untouched; a request that fails to build an
// entry poisons only its own outcome, never the siblings.
//
// Capacity is deliberately not checked here: callers gating on a hard cap
// must consult ComputeAttendanceStats().IsFull before calling. The caller
// is also responsible for persisting the event afterwards, exactly once.
func ApplyRegistrations(event *domain.Event, requests []Request) []Outcome {
	outcomes := make([]Outcome, 0, len(requests))

	registered := make(map[string]struct{}, len(event.Attendance))
	for _, entry := range event.Attendance {
		registered[entry.UserID] = struct{}{}
	}

	for start := 0; start < len(requests); start += batchSize {
		end := start + batchSize
		if end > len(requests) {
			end = len(requests)
		}
		batch := requests[start:end]

		// Entries are built concurrently within the batch, then applied
		// sequentially so duplicates inside one batch are still caught.
		built := make([]prepared, len(batch))
		var wg sync.WaitGroup
		for i, req := range batch {
			wg.Add(1)
			go func(i int, req Request) {
				defer wg.Done()
				built[i] = buildEntry(req)
			}(i, req)
		}
		wg.Wait()

		for i, p := range built {
			userID := batch[i].UserID
			if p.err != nil {
				outcomes = append(outcomes, Outcome{
					UserID:  userID,
					Status:  ResultError,
					Message: p.err.Error(),
				})
				continue
			}
			if _, ok := registered[p.entry.UserID]; ok {
				outcomes = append(outcomes, Outcome{
					UserID: userID,
					Status: ResultAlreadyRegistered,
				})
				continue
			}

			event.Attendance = append(event.Attendance, p.entry)
			registered[p.entry.UserID] = struct{}{}
			outcomes = append(outcomes, Outcome{UserID: userID, Status: ResultSuccess})
		}
	}

	return outcomes
}

func buildEntry(req Request) prepared {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return prepared{err: fmt.Errorf("user id is required")}
	}

	status := req.Status
	if status == "" {
		status = domain.AttendanceStatusPending
	}
	switch status {
	case domain.AttendanceStatusPending, domain.AttendanceStatusApproved,
		domain.AttendanceStatusAttended, domain.AttendanceStatusCompleted,
		domain.AttendanceStatusDisapproved:
	default:
		return prepared{err: fmt.Errorf("unknown attendance status %q", status)}
	}

	approved := false
	if req.Approved != nil {
		approved = *req.Approved
	}

	return prepared{entry: domain.AttendanceEntry{
		UserID:               userID,
		Status:               status,
		RegistrationApproved: approved,
		RegisteredAt:         time.Now().UTC(),
	}}
}
