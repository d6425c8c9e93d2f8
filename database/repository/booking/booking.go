package bookingRepo

import (
	"context"
	"errors"

	"pawhub/models"
)

// ErrSlotTaken is returned when the conditional slot claim matches no document,
// meaning another booking already holds the slot.
var ErrSlotTaken = errors.New("slot already booked")

// ListCriteria filters a booking listing.
type ListCriteria struct {
	UserID      string
	ProviderID  string
	ServiceType string
	Status      string
	DateFrom    string // "2006-01-02", inclusive
	DateTo      string // "2006-01-02", inclusive
	Upcoming    bool   // date >= today AND status in {scheduled, confirmed}
	Today       string // resolved "today" for the Upcoming shorthand
	Page        int64
	Limit       int64
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// CreateWithSlotClaim atomically claims the provider slot and inserts the
	// booking inside one transaction. Returns ErrSlotTaken when the slot was
	// claimed by a concurrent booking.
	CreateWithSlotClaim(ctx context.Context, weekday string, booking *models.Booking) error
	// GetByBookingID retrieves a booking by its human-readable booking ID.
	GetByBookingID(bookingID string) (*models.Booking, error)
	// FindActiveOverlaps returns bookings for the provider on the given date
	// whose time window intersects the requested window and whose status still
	// occupies the slot.
	FindActiveOverlaps(providerID, date string, window models.TimeWindow) ([]models.Booking, error)
	// List returns a page of bookings matching the criteria plus the total count.
	List(criteria ListCriteria) ([]models.Booking, int64, error)
	// UpdateStatus sets the booking's lifecycle status.
	UpdateStatus(bookingID, status string) error
}
