package models

import "time"

// Booking service types.
const (
	ServiceVet      = "vet"
	ServiceGrooming = "grooming"
	ServiceTraining = "training"
)

// Booking lifecycle statuses.
const (
	StatusScheduled  = "scheduled"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// TimeWindow is a start/end pair of zero-padded 24h "HH:MM" strings.
type TimeWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Overlaps reports whether two windows on the same day intersect.
// Valid because "HH:MM" strings order lexicographically.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.StartTime < other.EndTime && other.StartTime < w.EndTime
}

// PetDetails describes the animal the booking is for.
type PetDetails struct {
	Name    string `bson:"name" json:"name"`
	Species string `bson:"species" json:"species"`
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeYrs  int    `bson:"ageYears,omitempty" json:"ageYears,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Payment is the money sub-object embedded in a booking.
type Payment struct {
	Amount          float64 `bson:"amount" json:"amount"`
	Currency        string  `bson:"currency" json:"currency"`
	Method          string  `bson:"method" json:"method"` // "card" or "cash"
	Status          string  `bson:"status" json:"status"` // "pending" or "paid"
	PaymentIntentID string  `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
}

// ConsultationDetails is the vet-specific variant.
type ConsultationDetails struct {
	ConsultationType string `bson:"consultationType" json:"consultationType"` // "clinic", "home_visit" or "video"
	Reason           string `bson:"reason" json:"reason"`
}

// GroomingService is one item off a groomer's menu.
type GroomingService struct {
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
}

// GroomingDetails is the grooming-specific variant.
type GroomingDetails struct {
	ServiceType       string            `bson:"serviceType" json:"serviceType"` // "salon" or "mobile"
	ServicesRequested []GroomingService `bson:"servicesRequested" json:"servicesRequested"`
}

// TrainingDetails is the training-specific variant.
type TrainingDetails struct {
	TrainingType      string   `bson:"trainingType" json:"trainingType"` // "in_person" or "video"
	TrainingCategory  string   `bson:"trainingCategory" json:"trainingCategory"`
	SessionObjectives []string `bson:"sessionObjectives,omitempty" json:"sessionObjectives,omitempty"`
}

// Booking is a user's reservation of one provider slot. Exactly one of the
// service-specific detail pointers is set, matching ServiceType.
type Booking struct {
	ID            string               `bson:"id" json:"id"`
	BookingID     string               `bson:"bookingId" json:"bookingId"` // human-readable, e.g. "APT-1717428000123-4F7KQ2M9X"
	ServiceType   string               `bson:"serviceType" json:"serviceType"`
	UserID        string               `bson:"userId" json:"userId"`
	ProviderID    string               `bson:"providerId" json:"providerId"`
	PetDetails    PetDetails           `bson:"petDetails" json:"petDetails"`
	ScheduledDate string               `bson:"scheduledDate" json:"scheduledDate"` // "2006-01-02"
	ScheduledTime TimeWindow           `bson:"scheduledTime" json:"scheduledTime"`
	Status        string               `bson:"status" json:"status"`
	Payment       Payment              `bson:"payment" json:"payment"`
	Consultation  *ConsultationDetails `bson:"consultation,omitempty" json:"consultation,omitempty"`
	Grooming      *GroomingDetails     `bson:"grooming,omitempty" json:"grooming,omitempty"`
	Training      *TrainingDetails     `bson:"training,omitempty" json:"training,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// StartAt resolves the booking's scheduled start as a wall-clock instant
// in the given location.
func (b *Booking) StartAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.ScheduledDate+" "+b.ScheduledTime.StartTime, loc)
}

// EndAt resolves the booking's scheduled end in the given location.
func (b *Booking) EndAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.ScheduledDate+" "+b.ScheduledTime.EndTime, loc)
}

// IsVideo reports whether the booking is a remote video session.
func (b *Booking) IsVideo() bool {
	switch b.ServiceType {
	case ServiceVet:
		return b.Consultation != nil && b.Consultation.ConsultationType == "video"
	case ServiceTraining:
		return b.Training != nil && b.Training.TrainingType == "video"
	}
	return false
}

// ActiveStatuses are the statuses that occupy a slot. Bookings in any other
// status do not block new reservations.
var ActiveStatuses = []string{StatusScheduled, StatusConfirmed, StatusInProgress}

// InactiveStatuses are the statuses excluded from conflict checks.
var InactiveStatuses = []string{StatusCancelled, StatusCompleted, StatusNoShow}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	ServiceType   string               `json:"serviceType"`
	UserID        string               `json:"userId" binding:"required"`
	ProviderID    string               `json:"providerId" binding:"required"`
	PetDetails    PetDetails           `json:"petDetails" binding:"required"`
	ScheduledDate string               `json:"scheduledDate" binding:"required"`
	ScheduledTime TimeWindow           `json:"scheduledTime" binding:"required"`
	PaymentMethod string               `json:"paymentMethod"`
	Consultation  *ConsultationDetails `json:"consultation,omitempty"`
	Grooming      *GroomingDetails     `json:"grooming,omitempty"`
	Training      *TrainingDetails     `json:"training,omitempty"`
}

// BookingView is a booking decorated with read-time derived fields.
// The derived booleans are never persisted; they reflect "now" at request time.
type BookingView struct {
	Booking
	TimeRemaining string `json:"timeRemaining,omitempty"`
	CanCancel     bool   `json:"canCancel"`
	CanReschedule bool   `json:"canReschedule"`
	CanJoin       bool   `json:"canJoin"`
}

// ReminderPayload is the asynq task body for booking reminders.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	ProviderID  string `json:"providerId"`
	ServiceType string `json:"serviceType"`
	StartsAt    string `json:"startsAt"` // RFC3339
}
