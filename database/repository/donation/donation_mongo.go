package donationRepo

import (
	"context"
	"fmt"
	"time"

	"pawhub/database"
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDonationRepo implements DonationRepository using MongoDB.
type MongoDonationRepo struct {
	coll *mongo.Collection
}

// NewMongoDonationRepo creates a new instance of DonationRepository using MongoDB.
func NewMongoDonationRepo() DonationRepository {
	coll := database.DB().Collection("donations")
	return &MongoDonationRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDonationRepo) GetByID(id string) (*models.Donation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var donation models.Donation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&donation); err != nil {
		return nil, fmt.Errorf("failed to fetch donation with id %s: %w", id, err)
	}
	return &donation, nil
}

func (r *MongoDonationRepo) ListByStatus(status string) ([]models.Donation, error) {
	return r.list(bson.M{"status": status})
}

func (r *MongoDonationRepo) ListByDonor(donorID string) ([]models.Donation, error) {
	return r.list(bson.M{"donorId": donorID})
}

func (r *MongoDonationRepo) list(filter bson.M) ([]models.Donation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve donations: %w", err)
	}
	defer cursor.Close(ctx)
	var donations []models.Donation
	for cursor.Next(ctx) {
		var d models.Donation
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode donation: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, cursor.Err()
}

func (r *MongoDonationRepo) Create(donation *models.Donation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, donation); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *MongoDonationRepo) Claim(id, userID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id, "status": models.DonationAvailable}
	update := bson.M{"$set": bson.M{
		"status":    models.DonationClaimed,
		"claimedBy": userID,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to claim donation %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}
