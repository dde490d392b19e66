package registration

import (
	"fmt"
	"testing"

	"github.com/charism-app/charism-events/internal/accounting"
	"github.com/charism-app/charism-events/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRegistrations_AppendsPendingEntry(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	outcomes := ApplyRegistrations(event, []Request{{UserID: "u1"}})

	require.Len(t, outcomes, 1)
	assert.Equal(t, ResultSuccess, outcomes[0].Status)
	require.Len(t, event.Attendance, 1)
	assert.Equal(t, "u1", event.Attendance[0].UserID)
	assert.Equal(t, domain.AttendanceStatusPending, event.Attendance[0].Status)
	assert.False(t, event.Attendance[0].RegistrationApproved)
	assert.False(t, event.Attendance[0].RegisteredAt.IsZero())
}

func TestApplyRegistrations_OutcomesPreserveRequestOrder(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	var requests []Request
	for i := 0; i < 37; i++ { // spans several batches
		requests = append(requests, Request{UserID: fmt.Sprintf("u%02d", i)})
	}

	outcomes := ApplyRegistrations(event, requests)

	require.Len(t, outcomes, len(requests))
	for i, o := range outcomes {
		assert.Equal(t, requests[i].UserID, o.UserID)
		assert.Equal(t, ResultSuccess, o.Status)
	}

	// attendance order equals registration order
	require.Len(t, event.Attendance, len(requests))
	for i, entry := range event.Attendance {
		assert.Equal(t, requests[i].UserID, entry.UserID)
	}
}

func TestApplyRegistrations_DuplicateAcrossCalls(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	first := ApplyRegistrations(event, []Request{{UserID: "u1"}})
	second := ApplyRegistrations(event, []Request{{UserID: "u1"}})

	assert.Equal(t, ResultSuccess, first[0].Status)
	assert.Equal(t, ResultAlreadyRegistered, second[0].Status)
	assert.Len(t, event.Attendance, 1)
}

func TestApplyRegistrations_DuplicateWithinOneBatch(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	outcomes := ApplyRegistrations(event, []Request{
		{UserID: "u1"},
		{UserID: "u1"},
	})

	assert.Equal(t, ResultSuccess, outcomes[0].Status)
	assert.Equal(t, ResultAlreadyRegistered, outcomes[1].Status)
	assert.Len(t, event.Attendance, 1)
}

func TestApplyRegistrations_BadRequestDoesNotAbortBatch(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	outcomes := ApplyRegistrations(event, []Request{
		{UserID: "u1"},
		{UserID: "  "},
		{UserID: "u2", Status: "Teleported"},
		{UserID: "u3"},
	})

	require.Len(t, outcomes, 4)
	assert.Equal(t, ResultSuccess, outcomes[0].Status)
	assert.Equal(t, ResultError, outcomes[1].Status)
	assert.NotEmpty(t, outcomes[1].Message)
	assert.Equal(t, ResultError, outcomes[2].Status)
	assert.Equal(t, ResultSuccess, outcomes[3].Status)
	assert.Len(t, event.Attendance, 2)
}

func TestApplyRegistrations_InitialStatusAndApproval(t *testing.T) {
	event := &domain.Event{ID: "e1"}
	approved := true

	outcomes := ApplyRegistrations(event, []Request{
		{UserID: "u1", Status: domain.AttendanceStatusApproved, Approved: &approved},
	})

	require.Equal(t, ResultSuccess, outcomes[0].Status)
	assert.Equal(t, domain.AttendanceStatusApproved, event.Attendance[0].Status)
	assert.True(t, event.Attendance[0].RegistrationApproved)
}

// Capacity is not enforced by the processor; the cap only shows up in the
// stats the caller is expected to consult beforehand.
func TestApplyRegistrations_CapacityNotEnforced(t *testing.T) {
	event := &domain.Event{ID: "e1", MaxParticipants: 2}

	outcomes := ApplyRegistrations(event, []Request{
		{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"},
	})

	for _, o := range outcomes {
		assert.Equal(t, ResultSuccess, o.Status)
	}

	stats := accounting.ComputeAttendanceStats(event)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 0, stats.Approved)
	assert.Equal(t, domain.RemainingSlots(2), stats.AvailableSlots)
	assert.False(t, stats.IsFull)

	// external approval workflow marks two entries approved
	event.Attendance[0].RegistrationApproved = true
	event.Attendance[1].RegistrationApproved = true

	stats = accounting.ComputeAttendanceStats(event)
	assert.True(t, stats.IsFull)
	assert.Equal(t, domain.RemainingSlots(0), stats.AvailableSlots)
}

func TestApplyRegistrations_EmptyRequestList(t *testing.T) {
	event := &domain.Event{ID: "e1"}

	outcomes := ApplyRegistrations(event, nil)

	assert.Empty(t, outcomes)
	assert.Empty(t, event.Attendance)
}
