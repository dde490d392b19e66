// Package accounting derives per-event attendance figures and validates
// event field data. Everything here is a pure computation over an event
// already fetched into memory; fetching and persisting belong to the caller.
package accounting

import (
	"github.com/charism-app/charism-events/internal/domain"
)

// ComputeAttendanceStats walks the attendance list exactly once.
//
// Approved counts the registration_approved flag regardless of status;
// pending and disapproved count status regardless of the flag. The two
// axes are independent in the data model, so the buckets deliberately
// overlap. AvailableSlots is left signed so an over-capacity event
// surfaces a negative remainder instead of a clamped zero.
func ComputeAttendanceStats(event *domain.Event) domain.AttendanceStats {
	stats := domain.AttendanceStats{
		Total: len(event.Attendance),
	}

	for _, entry := range event.Attendance {
		if entry.RegistrationApproved {
			stats.Approved++
		}
		switch entry.Status {
		case domain.AttendanceStatusPending:
			stats.Pending++
		case domain.AttendanceStatusDisapproved:
			stats.Disapproved++
		case domain.AttendanceStatusAttended:
			if entry.RegistrationApproved {
				stats.Attended++
			}
		}
	}

	if event.MaxParticipants <= 0 {
		stats.AvailableSlots = domain.UnlimitedSlots()
	} else {
		stats.AvailableSlots = domain.RemainingSlots(event.MaxParticipants - stats.Approved)
		stats.IsFull = stats.Approved >= event.MaxParticipants
	}

	return stats
}
