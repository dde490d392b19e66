package accounting

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/charism-app/charism-events/internal/domain"
)

const dateLayout = "2006-01-02"

// 24-hour zero-padded HH:MM.
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ValidationResult struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// ValidateEventFields checks a candidate event's mutable fields before a
// create or update. It collects every violated rule instead of failing
// fast, so callers can show the whole list at once.
func ValidateEventFields(candidate domain.CreateEventInput) ValidationResult {
	var errs []string

	if strings.TrimSpace(candidate.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if strings.TrimSpace(candidate.Location) == "" {
		errs = append(errs, "location must not be empty")
	}
	if _, err := time.Parse(dateLayout, candidate.Date); err != nil {
		errs = append(errs, fmt.Sprintf("date %q is not a valid calendar date (expected YYYY-MM-DD)", candidate.Date))
	}
	if !timeOfDayRe.MatchString(candidate.StartTime) {
		errs = append(errs, fmt.Sprintf("start time %q must match HH:MM (24-hour)", candidate.StartTime))
	}
	if !timeOfDayRe.MatchString(candidate.EndTime) {
		errs = append(errs, fmt.Sprintf("end time %q must match HH:MM (24-hour)", candidate.EndTime))
	}
	if candidate.Hours < 0 || math.IsNaN(candidate.Hours) {
		errs = append(errs, "hours must be a non-negative number")
	}
	if candidate.MaxParticipants < 0 {
		errs = append(errs, "max participants must be a non-negative integer")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// EventDate parses the already validated date field.
func EventDate(candidate domain.CreateEventInput) (time.Time, error) {
	return time.Parse(dateLayout, candidate.Date)
}
