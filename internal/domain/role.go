package domain

type Role string

const (
	RoleStudent Role = "Student"
	RoleStaff   Role = "Staff"
	RoleAdmin   Role = "Admin"
	RolePublic  Role = "Public"
)

// ParseRole maps a caller-supplied role string onto the closed enum.
// Anything unrecognized is treated as an anonymous caller.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin:
		return Role(s)
	default:
		return RolePublic
	}
}
