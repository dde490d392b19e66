// Package analytics derives reporting breakdowns from one event's
// attendance list.
package analytics

import (
	"github.com/charism-app/charism-events/internal/accounting"
	"github.com/charism-app/charism-events/internal/domain"
)

// ComputeEventAnalytics builds department and academic-year breakdowns in
// a single pass. Entries whose member reference was not resolved are
// skipped from the breakdowns but still count toward the totals and the
// embedded attendance stats. Resolving members is the caller's join.
func ComputeEventAnalytics(event *domain.Event) domain.EventAnalytics {
	result := domain.EventAnalytics{
		EventID:             event.ID,
		Title:               event.Title,
		TotalRegistrations:  len(event.Attendance),
		AttendanceStats:     accounting.ComputeAttendanceStats(event),
		DepartmentBreakdown: make(map[string]int),
		YearBreakdown:       make(map[string]int),
	}

	for _, entry := range event.Attendance {
		if entry.Member == nil {
			continue
		}
		if entry.Member.Department != "" {
			result.DepartmentBreakdown[entry.Member.Department]++
		}
		if entry.Member.AcademicYear != "" {
			result.YearBreakdown[entry.Member.AcademicYear]++
		}
	}

	return result
}
