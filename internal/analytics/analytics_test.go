package analytics

import (
	"testing"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeEventAnalytics_Breakdowns(t *testing.T) {
	event := &domain.Event{
		ID:    "e1",
		Title: "Tree Planting",
		Attendance: []domain.AttendanceEntry{
			{UserID: "u1", Member: &domain.Member{UserID: "u1", Department: "CS", AcademicYear: "2026"}},
			{UserID: "u2", Member: &domain.Member{UserID: "u2", Department: "CS", AcademicYear: "2027"}},
			{UserID: "u3", Member: &domain.Member{UserID: "u3", Department: "Math", AcademicYear: "2026"}},
		},
	}

	result := ComputeEventAnalytics(event)

	assert.Equal(t, "e1", result.EventID)
	assert.Equal(t, "Tree Planting", result.Title)
	assert.Equal(t, 3, result.TotalRegistrations)
	assert.Equal(t, map[string]int{"CS": 2, "Math": 1}, result.DepartmentBreakdown)
	assert.Equal(t, map[string]int{"2026": 2, "2027": 1}, result.YearBreakdown)
}

// Unresolved members drop out of the breakdowns but still count toward
// registrations and the embedded stats.
func TestComputeEventAnalytics_SkipsUnresolvedMembers(t *testing.T) {
	event := &domain.Event{
		ID: "e1",
		Attendance: []domain.AttendanceEntry{
			{UserID: "u1", Member: &domain.Member{UserID: "u1", Department: "CS", AcademicYear: "2026"}},
			{UserID: "ghost", RegistrationApproved: true}, // member deleted upstream
		},
	}

	result := ComputeEventAnalytics(event)

	assert.Equal(t, 2, result.TotalRegistrations)
	assert.Equal(t, 2, result.AttendanceStats.Total)
	assert.Equal(t, 1, result.AttendanceStats.Approved)
	assert.Equal(t, map[string]int{"CS": 1}, result.DepartmentBreakdown)
}

func TestComputeEventAnalytics_EmptyAttendance(t *testing.T) {
	event := &domain.Event{ID: "e1", MaxParticipants: 10}

	result := ComputeEventAnalytics(event)

	assert.Zero(t, result.TotalRegistrations)
	assert.Empty(t, result.DepartmentBreakdown)
	assert.Empty(t, result.YearBreakdown)
	assert.Equal(t, domain.RemainingSlots(10), result.AttendanceStats.AvailableSlots)
}
