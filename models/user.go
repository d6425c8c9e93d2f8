package models

import "time"

// User roles.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Pet is an animal registered under a user's account.
type Pet struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Species string `bson:"species" json:"species"`
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeYrs  int    `bson:"ageYears,omitempty" json:"ageYears,omitempty"`
}

// User is a platform account (pet owner, store seller or admin).
type User struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role        string    `bson:"role" json:"role"`
	Security    Security  `bson:"security" json:"security,omitzero"`
	Pets        []Pet     `bson:"pets,omitempty" json:"pets,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
