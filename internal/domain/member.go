package domain

// Member is the slice of the external user record this core reads for
// analytics. The user system owns the full entity.
type Member struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	AcademicYear string `json:"academic_year"`
}
