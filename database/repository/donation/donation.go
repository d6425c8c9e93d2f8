package donationRepo

import "pawhub/models"

// DonationRepository defines methods for donation data access.
type DonationRepository interface {
	// GetByID retrieves a donation by its unique ID.
	GetByID(id string) (*models.Donation, error)
	// ListByStatus retrieves donations with the given status.
	ListByStatus(status string) ([]models.Donation, error)
	// ListByDonor retrieves a donor's own listings.
	ListByDonor(donorID string) ([]models.Donation, error)
	// Create inserts a new donation listing.
	Create(donation *models.Donation) error
	// Claim marks an available donation as claimed by the given user.
	// The update is conditional on the donation still being available;
	// returns false when another claim won.
	Claim(id, userID string) (bool, error)
}
