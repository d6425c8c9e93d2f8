package booking

import (
	"fmt"
	"time"

	"pawhub/models"
)

// Cancellation thresholds per service type; rescheduling requires twice the gap.
const (
	vetCancelThreshold      = 2 * time.Hour
	standardCancelThreshold = 24 * time.Hour

	// Video sessions open for joining this long before the start.
	joinWindowBefore = 10 * time.Minute
)

// CancelThreshold returns the minimum gap to the start time required for the
// booking to still be cancellable.
func CancelThreshold(serviceType string) time.Duration {
	if serviceType == models.ServiceVet {
		return vetCancelThreshold
	}
	return standardCancelThreshold
}

// FormatTimeRemaining renders a positive duration as minutes, hours or days.
// Non-positive durations render empty.
func FormatTimeRemaining(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins < 1 {
			mins = 1
		}
		return fmt.Sprintf("%d %s", mins, plural(mins, "minute"))
	}
	if d < 24*time.Hour {
		hrs := int(d.Hours())
		return fmt.Sprintf("%d %s", hrs, plural(hrs, "hour"))
	}
	days := int(d.Hours() / 24)
	return fmt.Sprintf("%d %s", days, plural(days, "day"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func cancellable(status string) bool {
	return status == models.StatusScheduled || status == models.StatusConfirmed
}

// Decorate computes the read-time derived fields for a booking. The result is
// a pure function of the booking and the supplied clock value; nothing is
// persisted, so the booleans always reflect "now" at request time.
func Decorate(b models.Booking, now time.Time) models.BookingView {
	view := models.BookingView{Booking: b}

	start, err := b.StartAt(now.Location())
	if err != nil {
		return view
	}
	end, err := b.EndAt(now.Location())
	if err != nil {
		end = start
	}

	gap := start.Sub(now)
	view.TimeRemaining = FormatTimeRemaining(gap)

	threshold := CancelThreshold(b.ServiceType)
	view.CanCancel = cancellable(b.Status) && gap >= threshold
	view.CanReschedule = cancellable(b.Status) && gap >= 2*threshold

	if b.IsVideo() && b.Status != models.StatusCancelled &&
		b.Status != models.StatusCompleted && b.Status != models.StatusNoShow {
		joinOpens := start.Add(-joinWindowBefore)
		view.CanJoin = !now.Before(joinOpens) && !now.After(end)
	}

	return view
}
