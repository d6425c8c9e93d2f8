package models

import "time"

// Donation statuses.
const (
	DonationAvailable = "available"
	DonationClaimed   = "claimed"
	DonationExpired   = "expired"
)

// Donation is a food donation listing on the marketplace.
type Donation struct {
	ID          string    `bson:"id" json:"id"`
	DonorID     string    `bson:"donorId" json:"donorId"`
	FoodType    string    `bson:"foodType" json:"foodType"` // e.g. "dry", "wet", "raw"
	Brand       string    `bson:"brand,omitempty" json:"brand,omitempty"`
	QuantityKg  float64   `bson:"quantityKg" json:"quantityKg"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	LocationGeo GeoPoint  `bson:"locationGeo" json:"locationGeo"`
	ExpiryDate  string    `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"` // "2006-01-02"
	Status      string    `bson:"status" json:"status"`
	ClaimedBy   string    `bson:"claimedBy,omitempty" json:"claimedBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DonationView is a donation plus its distance from the query point.
type DonationView struct {
	Donation
	DistanceKm float64 `json:"distanceKm"`
}
