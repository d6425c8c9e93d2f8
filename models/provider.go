package models

import (
	"strings"
	"time"
)

// Provider service types.
const (
	ProviderTypeVet     = "vet"
	ProviderTypeGroomer = "groomer"
	ProviderTypeTrainer = "trainer"
)

// Provider approval statuses.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Profile holds a provider's public identity.
type Profile struct {
	Name           string   `bson:"name" json:"name"`
	Type           string   `bson:"type" json:"type"` // "vet", "groomer" or "trainer"
	Email          string   `bson:"email" json:"email,omitempty"`
	PhoneNumber    string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Specialization string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Address        string   `bson:"address,omitempty" json:"address,omitempty"`
	Rating         float64  `bson:"rating" json:"rating,omitempty"`
	LocationGeo    GeoPoint `bson:"locationGeo" json:"locationGeo"`
}

// Security carries credential material. The plain password and token are
// never persisted; only their hashes are.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Fee is the provider's base charge for a single booking.
type Fee struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"` // e.g. "USD"
}

// Slot is one bookable window on a provider's weekly schedule.
// Times are zero-padded 24h "HH:MM" strings, so they compare lexicographically.
type Slot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
}

// DayAvailability is the schedule for one weekday.
type DayAvailability struct {
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
	Slots       []Slot `bson:"slots" json:"slots"`
}

// Availability maps lowercase weekday names ("monday"..."sunday") to day schedules.
type Availability map[string]DayAvailability

// Provider is a vet, groomer or trainer offering bookable time slots.
type Provider struct {
	ID             string       `bson:"id" json:"id"`
	Profile        Profile      `bson:"profile" json:"profile"`
	Security       Security     `bson:"security" json:"security,omitzero"`
	Fee            Fee          `bson:"fee" json:"fee"`
	Availability   Availability `bson:"availability" json:"availability,omitempty"`
	IsActive       bool         `bson:"isActive" json:"isActive"`
	ApprovalStatus string       `bson:"approvalStatus" json:"approvalStatus"`
	OffersVideo    bool         `bson:"offersVideo" json:"offersVideo"` // video consultations / remote sessions
	MobileService  bool         `bson:"mobileService,omitempty" json:"mobileService,omitempty"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Bookable reports whether the provider may accept new bookings at all.
func (p *Provider) Bookable() bool {
	return p.IsActive && p.ApprovalStatus == ApprovalApproved
}

// WeekdayKey resolves a time.Weekday to the availability map key.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// FindSlot returns the slot matching the given window on the given weekday,
// or nil when the day is closed or no such slot exists.
func (a Availability) FindSlot(weekday string, window TimeWindow) *Slot {
	day, ok := a[weekday]
	if !ok || !day.IsAvailable {
		return nil
	}
	for i := range day.Slots {
		if day.Slots[i].StartTime == window.StartTime && day.Slots[i].EndTime == window.EndTime {
			return &day.Slots[i]
		}
	}
	return nil
}
