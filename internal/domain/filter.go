package domain

import "strings"

// FilterAll disables a predicate of AppointmentFilter
const FilterAll = "All"

// AppointmentFilter is the console-facing filter over an appointment list
type AppointmentFilter struct {
	Branch     string // branch name, exact match (case-sensitive); "All" disables
	Status     string // status, case-insensitive; "All" disables
	SearchText string // case-insensitive substring of the customer name; "" matches everything
}

// FilterAppointments returns the appointments matching the filter.
// The result is a new slice preserving the source order (stable filter);
// the source collection is never mutated. Applying the same filter twice
// yields the same result.
func FilterAppointments(all []*Appointment, filter AppointmentFilter) []*Appointment {
	search := strings.ToLower(filter.SearchText)

	matched := make([]*Appointment, 0, len(all))
	for _, appt := range all {
		if filter.Branch != "" && filter.Branch != FilterAll && appt.BranchName != filter.Branch {
			continue
		}

		if filter.Status != "" && filter.Status != FilterAll {
			if !strings.EqualFold(string(appt.Status), filter.Status) {
				continue
			}
		}

		if search != "" && !strings.Contains(strings.ToLower(appt.CustomerName), search) {
			continue
		}

		matched = append(matched, appt)
	}

	return matched
}
