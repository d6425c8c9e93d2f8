package provider

import (
	"fmt"
	"sort"
	"time"

	"pawhub/models"
)

// ValidateDaySchedule checks one weekday's slot list before it replaces the
// stored schedule. Slots must carry well-formed zero-padded "HH:MM" windows
// and must not overlap each other; bookings rely on that at read time.
func ValidateDaySchedule(day models.DayAvailability) error {
	for _, slot := range day.Slots {
		if _, err := time.Parse("15:04", slot.StartTime); err != nil {
			return fmt.Errorf("slot start %q is not a valid HH:MM time", slot.StartTime)
		}
		if _, err := time.Parse("15:04", slot.EndTime); err != nil {
			return fmt.Errorf("slot end %q is not a valid HH:MM time", slot.EndTime)
		}
		if slot.EndTime <= slot.StartTime {
			return fmt.Errorf("slot %s-%s ends before it starts", slot.StartTime, slot.EndTime)
		}
	}

	sorted := make([]models.Slot, len(day.Slots))
	copy(sorted, day.Slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartTime < sorted[j].StartTime })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartTime < sorted[i-1].EndTime {
			return fmt.Errorf("slots %s-%s and %s-%s overlap",
				sorted[i-1].StartTime, sorted[i-1].EndTime,
				sorted[i].StartTime, sorted[i].EndTime)
		}
	}
	return nil
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// SetDayAvailability validates and replaces the whole schedule for one
// weekday. Replacing a day resets its slots' booked flags to whatever the
// provider submits.
func (s *DefaultProviderService) SetDayAvailability(id, weekday string, day models.DayAvailability) error {
	if !weekdays[weekday] {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, weekday)
	}
	if err := ValidateDaySchedule(day); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if _, err := s.Repo.GetByID(id); err != nil {
		return ErrProviderNotFound
	}
	return s.Repo.SetDayAvailability(id, weekday, day)
}
