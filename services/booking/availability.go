package booking

import (
	"time"

	"pawhub/models"
	"pawhub/utils"

	"go.uber.org/zap"
)

// IsSlotAvailable checks the provider's weekly schedule and conflicting
// bookings for the requested window. It fails closed: an unknown provider,
// a malformed date, a closed weekday or a missing slot all read as
// unavailable. The overlap check uses full interval intersection for every
// service type, so offset-but-overlapping bookings are detected uniformly.
//
// The check performs no writes; calling it repeatedly without an intervening
// booking returns the same answer.
func (s *DefaultBookingService) IsSlotAvailable(providerID, date string, window models.TimeWindow) (bool, error) {
	logger := utils.GetLogger()

	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil || provider == nil {
		logger.Debug("availability check: provider lookup failed",
			zap.String("providerID", providerID), zap.Error(err))
		return false, nil
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return false, nil
	}
	weekday := models.WeekdayKey(day.Weekday())

	slot := provider.Availability.FindSlot(weekday, window)
	if slot == nil {
		return false, nil
	}
	if slot.IsBooked {
		return false, nil
	}

	conflicts, err := s.Repo.FindActiveOverlaps(providerID, date, window)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}
