package providerRepo

import (
	"context"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address.
	GetByEmail(email string) (*models.Provider, error)
	// List retrieves providers, optionally filtered by service type.
	List(providerType string) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Update modifies an existing provider record.
	Update(provider *models.Provider) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// SetDayAvailability replaces the whole schedule for one weekday.
	SetDayAvailability(id, weekday string, day models.DayAvailability) error
	// SetSlotBooked flips the booked flag on the matching slot. The update is
	// conditional: when booking, only a currently unbooked slot matches.
	// Returns false when no slot matched.
	SetSlotBooked(ctx context.Context, providerID, weekday string, window models.TimeWindow, booked bool) (bool, error)
}
