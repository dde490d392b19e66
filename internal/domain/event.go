package domain

import "time"

type EventStatus string

const (
	EventStatusActive   EventStatus = "Active"
	EventStatusDisabled EventStatus = "Disabled"
)

type AttendanceStatus string

const (
	AttendanceStatusPending     AttendanceStatus = "Pending"
	AttendanceStatusApproved    AttendanceStatus = "Approved"
	AttendanceStatusAttended    AttendanceStatus = "Attended"
	AttendanceStatusCompleted   AttendanceStatus = "Completed"
	AttendanceStatusDisapproved AttendanceStatus = "Disapproved"
)

type Event struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Location            string            `json:"location"`
	Date                time.Time         `json:"date"`
	StartTime           string            `json:"start_time"`
	EndTime             string            `json:"end_time"`
	Hours               float64           `json:"hours"`
	MaxParticipants     int               `json:"max_participants"` // 0 means unlimited
	Department          string            `json:"department"`
	Departments         []string          `json:"departments"`
	IsForAllDepartments bool              `json:"is_for_all_departments"`
	Status              EventStatus       `json:"status"`
	IsVisibleToStudents bool              `json:"is_visible_to_students"`
	CreatedBy           string            `json:"created_by"`
	Attendance          []AttendanceEntry `json:"attendance"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// AttendanceEntry is owned by its parent Event; insertion order is
// registration order. RegisteredAt is set once and never mutated.
type AttendanceEntry struct {
	UserID               string           `json:"user_id"`
	Member               *Member          `json:"member,omitempty"` // resolved externally, nil until resolved
	Status               AttendanceStatus `json:"status"`
	RegistrationApproved bool             `json:"registration_approved"`
	RegisteredAt         time.Time        `json:"registered_at"`
}

type CreateEventInput struct {
	Title               string
	Description         string
	Location            string
	Date                string
	StartTime           string
	EndTime             string
	Hours               float64
	MaxParticipants     int
	Department          string
	Departments         []string
	IsForAllDepartments bool
	IsVisibleToStudents bool
	CreatedBy           string
}
