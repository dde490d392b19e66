package query

import "github.com/charism-app/charism-events/internal/domain"

var baseFields = []string{
	"id", "title", "description", "location",
	"date", "start_time", "end_time", "hours",
	"max_participants", "department", "departments",
	"is_for_all_departments", "status", "is_visible_to_students",
}

var auditFields = []string{"created_by", "created_at", "updated_at"}

// Projection returns the field names a role receives in event payloads.
// Staff and admins additionally see the audit fields.
func Projection(role domain.Role) []string {
	fields := make([]string, 0, len(baseFields)+len(auditFields))
	fields = append(fields, baseFields...)
	if role == domain.RoleAdmin || role == domain.RoleStaff {
		fields = append(fields, auditFields...)
	}
	return fields
}
