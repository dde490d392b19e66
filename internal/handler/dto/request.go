package dto

// Field-level validation happens in the service so a response can carry
// every violation at once; binding stays structural.
type SaveEventRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Location            string   `json:"location"`
	Date                string   `json:"date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	Hours               float64  `json:"hours"`
	MaxParticipants     int      `json:"max_participants"`
	Department          string   `json:"department"`
	Departments         []string `json:"departments"`
	IsForAllDepartments bool     `json:"is_for_all_departments"`
	IsVisibleToStudents bool     `json:"is_visible_to_students"`
}

type RegisterRequest struct {
	Registrations []RegistrationItem `json:"registrations" binding:"required"`
}

type RegistrationItem struct {
	UserID               string `json:"user_id"`
	Status               string `json:"status"`
	RegistrationApproved *bool  `json:"registration_approved"`
}
