package booking

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/utils"
)

// Legal lifecycle transitions. Terminal states have no outgoing edges.
var transitions = map[string][]string{
	models.StatusScheduled:  {models.StatusConfirmed, models.StatusInProgress, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled, models.StatusNoShow},
	models.StatusInProgress: {models.StatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ListBookings returns a page of bookings matching the criteria, each
// decorated with the derived display fields.
func (s *DefaultBookingService) ListBookings(criteria bookingRepo.ListCriteria) ([]models.BookingView, models.Pagination, error) {
	now := s.now()
	if criteria.Upcoming && criteria.Today == "" {
		criteria.Today = now.Format("2006-01-02")
	}
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.Limit < 1 {
		criteria.Limit = 10
	}

	bookings, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, Decorate(b, now))
	}

	pagination := models.Pagination{
		Page:       criteria.Page,
		Limit:      criteria.Limit,
		Total:      total,
		TotalPages: (total + criteria.Limit - 1) / criteria.Limit,
	}
	return views, pagination, nil
}

// GetBooking returns one booking with derived fields.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.BookingView, error) {
	b, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	view := Decorate(*b, s.now())
	return &view, nil
}

// fetch maps a missing document to ErrBookingNotFound while letting
// infrastructure failures surface as themselves.
func (s *DefaultBookingService) fetch(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// UpdateStatus applies a guarded lifecycle transition. Moving into cancelled
// or no_show frees the provider's slot so it can be rebooked.
func (s *DefaultBookingService) UpdateStatus(bookingID, next string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(b.Status, next) {
		return nil, &TransitionError{From: b.Status, To: next}
	}

	if err := s.Repo.UpdateStatus(bookingID, next); err != nil {
		return nil, err
	}
	b.Status = next
	b.UpdatedAt = s.now()

	if next == models.StatusCancelled || next == models.StatusNoShow {
		s.releaseSlot(b)
	}

	logger.Info("booking status updated",
		zap.String("bookingID", bookingID), zap.String("status", next))
	return b, nil
}

// releaseSlot is best effort: a failed release leaves the slot blocked until
// the provider edits the day schedule, never a double booking.
func (s *DefaultBookingService) releaseSlot(b *models.Booking) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", b.ScheduledDate, time.Local)
	if err != nil {
		logger.Warn("slot release skipped: bad scheduled date",
			zap.String("bookingID", b.BookingID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	weekday := models.WeekdayKey(day.Weekday())
	matched, err := s.ProviderRepo.SetSlotBooked(ctx, b.ProviderID, weekday, b.ScheduledTime, false)
	if err != nil || !matched {
		logger.Warn("failed to release provider slot",
			zap.String("bookingID", b.BookingID),
			zap.String("providerID", b.ProviderID),
			zap.Bool("matched", matched),
			zap.Error(err))
	}
}
