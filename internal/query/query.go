// Package query builds the role-scoped filters deciding which events a
// caller may see. Filters are plain data: the repository renders them to
// SQL and Matches evaluates them in memory, so visibility rules live in
// exactly one place.
package query

import (
	"time"

	"github.com/charism-app/charism-events/internal/domain"
)

type EventFilter struct {
	ExcludeDisabled    bool
	StudentVisibleOnly bool
	// Department non-empty scopes to events for that department, events
	// flagged for all departments, or events listing it among their
	// departments.
	Department string
}

// roleFilters is the closed dispatch table; every role resolves here,
// unknown roles fall back to the public filter.
var roleFilters = map[domain.Role]func(department string) EventFilter{
	domain.RoleStudent: func(string) EventFilter {
		return EventFilter{ExcludeDisabled: true, StudentVisibleOnly: true}
	},
	domain.RoleStaff: func(department string) EventFilter {
		return EventFilter{ExcludeDisabled: true, Department: department}
	},
	domain.RoleAdmin: func(string) EventFilter {
		return EventFilter{}
	},
	domain.RolePublic: func(string) EventFilter {
		return EventFilter{ExcludeDisabled: true, StudentVisibleOnly: true}
	},
}

func BuildEventQuery(role domain.Role, department string) EventFilter {
	build, ok := roleFilters[role]
	if !ok {
		build = roleFilters[domain.RolePublic]
	}
	return build(department)
}

func (f EventFilter) Matches(event *domain.Event) bool {
	if f.ExcludeDisabled && event.Status == domain.EventStatusDisabled {
		return false
	}
	if f.StudentVisibleOnly && !event.IsVisibleToStudents {
		return false
	}
	if f.Department != "" && !departmentInScope(event, f.Department) {
		return false
	}
	return true
}

func departmentInScope(event *domain.Event, department string) bool {
	if event.IsForAllDepartments || event.Department == department {
		return true
	}
	for _, d := range event.Departments {
		if d == department {
			return true
		}
	}
	return false
}

// SearchQuery is the full search request handed to the store: the role
// filter plus the caller's free-text and field narrowing. Limit is a hard
// ceiling on the result set.
type SearchQuery struct {
	Filter          EventFilter
	Term            string
	ExactDepartment string
	ExactStatus     domain.EventStatus
	DateFrom        *time.Time
	DateTo          *time.Time
	Limit           int
}
