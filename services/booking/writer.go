package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/utils"
)

var serviceProviderTypes = map[string]string{
	models.ServiceVet:      models.ProviderTypeVet,
	models.ServiceGrooming: models.ProviderTypeGroomer,
	models.ServiceTraining: models.ProviderTypeTrainer,
}

func validateInput(input models.BookingInput) error {
	if _, ok := serviceProviderTypes[input.ServiceType]; !ok {
		return &ValidationError{Field: "serviceType", Reason: "must be vet, grooming or training"}
	}
	if input.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "is required"}
	}
	if input.ProviderID == "" {
		return &ValidationError{Field: "providerId", Reason: "is required"}
	}
	if input.PetDetails.Name == "" {
		return &ValidationError{Field: "petDetails.name", Reason: "is required"}
	}
	if _, err := time.Parse("2006-01-02", input.ScheduledDate); err != nil {
		return &ValidationError{Field: "scheduledDate", Reason: "must be an ISO date (YYYY-MM-DD)"}
	}
	if _, err := time.Parse("15:04", input.ScheduledTime.StartTime); err != nil {
		return &ValidationError{Field: "scheduledTime.startTime", Reason: "must be HH:MM (24h)"}
	}
	if _, err := time.Parse("15:04", input.ScheduledTime.EndTime); err != nil {
		return &ValidationError{Field: "scheduledTime.endTime", Reason: "must be HH:MM (24h)"}
	}
	if input.ScheduledTime.EndTime <= input.ScheduledTime.StartTime {
		return &ValidationError{Field: "scheduledTime", Reason: "endTime must be after startTime"}
	}
	switch input.ServiceType {
	case models.ServiceVet:
		if input.Consultation == nil || input.Consultation.Reason == "" {
			return &ValidationError{Field: "consultation.reason", Reason: "is required"}
		}
	case models.ServiceGrooming:
		if input.Grooming == nil || len(input.Grooming.ServicesRequested) == 0 {
			return &ValidationError{Field: "grooming.servicesRequested", Reason: "at least one service is required"}
		}
	case models.ServiceTraining:
		if input.Training == nil || input.Training.TrainingCategory == "" {
			return &ValidationError{Field: "training.trainingCategory", Reason: "is required"}
		}
	}
	return nil
}

// abandonPayment voids a payment prepared for a booking that never made it
// into the database. Failures are logged; the caller's error stands.
func (s *DefaultBookingService) abandonPayment(ctx context.Context, b *models.Booking) {
	if s.Payments == nil {
		return
	}
	if err := s.Payments.CancelPayment(ctx, b.Payment); err != nil {
		utils.GetLogger().Warn("failed to cancel abandoned payment",
			zap.String("bookingID", b.BookingID),
			zap.String("paymentIntentID", b.Payment.PaymentIntentID),
			zap.Error(err))
	}
}

// CreateBooking validates the input, checks the slot, prices the booking and
// persists it. The slot claim and booking insert run in one transaction, so a
// concurrent request for the same slot surfaces as ErrSlotUnavailable rather
// than a double booking.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.GetByID(input.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	provider, err := s.ProviderRepo.GetByID(input.ProviderID)
	if err != nil || provider == nil {
		return nil, ErrProviderNotFound
	}
	if !provider.Bookable() || provider.Profile.Type != serviceProviderTypes[input.ServiceType] {
		return nil, ErrProviderUnavailable
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04",
		input.ScheduledDate+" "+input.ScheduledTime.StartTime, time.Local)
	if err != nil {
		return nil, &ValidationError{Field: "scheduledDate", Reason: "could not resolve start time"}
	}
	// Strictly future: a start equal to "now" is rejected.
	if !startAt.After(s.now()) {
		return nil, ErrPastTime
	}

	available, err := s.IsSlotAvailable(input.ProviderID, input.ScheduledDate, input.ScheduledTime)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	now := s.now()
	method := input.PaymentMethod
	if method == "" {
		method = "cash"
	}
	b := &models.Booking{
		ID:            uuid.New().String(),
		BookingID:     NewBookingID(input.ServiceType),
		ServiceType:   input.ServiceType,
		UserID:        input.UserID,
		ProviderID:    input.ProviderID,
		PetDetails:    input.PetDetails,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Status:        models.StatusScheduled,
		Payment: models.Payment{
			Amount:   ComputeAmount(provider, input),
			Currency: provider.Fee.Currency,
			Method:   method,
			Status:   "pending",
		},
		Consultation: input.Consultation,
		Grooming:     input.Grooming,
		Training:     input.Training,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.Payments != nil {
		payment, err := s.Payments.ProcessPayment(ctx, b)
		if err != nil {
			return nil, fmt.Errorf("payment failed: %w", err)
		}
		b.Payment = payment
	}

	weekday := models.WeekdayKey(startAt.Weekday())
	if err := s.Repo.CreateWithSlotClaim(ctx, weekday, b); err != nil {
		s.abandonPayment(ctx, b)
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(b, startAt); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", b.BookingID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", b.BookingID),
		zap.String("providerID", b.ProviderID),
		zap.String("date", b.ScheduledDate),
		zap.String("start", b.ScheduledTime.StartTime))
	return b, nil
}
