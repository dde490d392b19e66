package domain

import (
	"encoding/json"
	"strconv"
)

// SlotCount is the remaining-capacity figure for an event. Unlimited events
// serialize as the string "Unlimited"; limited events as a signed number
// (negative when over capacity, never clamped).
type SlotCount struct {
	Unlimited bool `json:"-"`
	Remaining int  `json:"-"`
}

func UnlimitedSlots() SlotCount {
	return SlotCount{Unlimited: true}
}

func RemainingSlots(n int) SlotCount {
	return SlotCount{Remaining: n}
}

func (s SlotCount) MarshalJSON() ([]byte, error) {
	if s.Unlimited {
		return json.Marshal("Unlimited")
	}
	return json.Marshal(s.Remaining)
}

func (s *SlotCount) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*s = UnlimitedSlots()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = RemainingSlots(n)
	return nil
}

func (s SlotCount) String() string {
	if s.Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(s.Remaining)
}

type AttendanceStats struct {
	Total          int       `json:"total"`
	Approved       int       `json:"approved"`
	Pending        int       `json:"pending"`
	Disapproved    int       `json:"disapproved"`
	Attended       int       `json:"attended"`
	AvailableSlots SlotCount `json:"available_slots"`
	IsFull         bool      `json:"is_full"`
}

type EventAnalytics struct {
	EventID             string          `json:"event_id"`
	Title               string          `json:"title"`
	TotalRegistrations  int             `json:"total_registrations"`
	AttendanceStats     AttendanceStats `json:"attendance_stats"`
	DepartmentBreakdown map[string]int  `json:"department_breakdown"`
	YearBreakdown       map[string]int  `json:"year_breakdown"`
}
