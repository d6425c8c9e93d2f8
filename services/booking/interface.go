package booking

import (
	"time"

	bookingRepo "pawhub/database/repository/booking"
	providerRepo "pawhub/database/repository/provider"
	userRepo "pawhub/database/repository/user"
	"pawhub/models"
)

// BookingService is the single booking engine behind the vet, grooming and
// training flows.
type BookingService interface {
	// IsSlotAvailable reports whether the provider's schedule marks the window
	// open, the slot is unbooked, and no active booking conflicts. Fails closed.
	IsSlotAvailable(providerID, date string, window models.TimeWindow) (bool, error)
	// CreateBooking validates, prices and persists a booking, claiming the
	// provider slot atomically.
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	// ListBookings returns a filtered page of bookings with derived fields.
	ListBookings(criteria bookingRepo.ListCriteria) ([]models.BookingView, models.Pagination, error)
	// GetBooking returns one booking with derived fields.
	GetBooking(bookingID string) (*models.BookingView, error)
	// UpdateStatus applies a guarded lifecycle transition. Transitions into
	// cancelled or no_show release the provider slot.
	UpdateStatus(bookingID, next string) (*models.Booking, error)
}

// ReminderScheduler enqueues a booking reminder to fire before the start time.
type ReminderScheduler interface {
	Schedule(booking *models.Booking, startAt time.Time) error
}

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
	Payments     PaymentHandler
	Reminders    ReminderScheduler

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
