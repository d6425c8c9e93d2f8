package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pawhub/database"
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It holds both
// the bookings and providers collections because the slot claim spans the two.
type MongoBookingRepo struct {
	bookingColl  *mongo.Collection
	providerColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl:  db.Collection("bookings"),
		providerColl: db.Collection("providers"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) GetByBookingID(bookingID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var booking models.Booking
	filter := bson.M{"bookingId": bookingID}
	if err := r.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) FindActiveOverlaps(providerID, date string, window models.TimeWindow) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Three-way interval overlap collapses to start < otherEnd && otherStart < end.
	// Lexicographic comparison is valid for zero-padded "HH:MM" strings.
	filter := bson.M{
		"providerId":              providerID,
		"scheduledDate":           date,
		"status":                  bson.M{"$nin": models.InactiveStatuses},
		"scheduledTime.startTime": bson.M{"$lt": window.EndTime},
		"scheduledTime.endTime":   bson.M{"$gt": window.StartTime},
	}
	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, cursor.Err()
}

func (r *MongoBookingRepo) List(criteria ListCriteria) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.UserID != "" {
		filter["userId"] = criteria.UserID
	}
	if criteria.ProviderID != "" {
		filter["providerId"] = criteria.ProviderID
	}
	if criteria.ServiceType != "" {
		filter["serviceType"] = criteria.ServiceType
	}
	if criteria.Status != "" {
		filter["status"] = criteria.Status
	}
	dateRange := bson.M{}
	if criteria.DateFrom != "" {
		dateRange["$gte"] = criteria.DateFrom
	}
	if criteria.DateTo != "" {
		dateRange["$lte"] = criteria.DateTo
	}
	if criteria.Upcoming {
		dateRange["$gte"] = criteria.Today
		filter["status"] = bson.M{"$in": []string{models.StatusScheduled, models.StatusConfirmed}}
	}
	if len(dateRange) > 0 {
		filter["scheduledDate"] = dateRange
	}

	total, err := r.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit < 1 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "scheduledDate", Value: 1}, {Key: "scheduledTime.startTime", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, 0, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, cursor.Err()
}

func (r *MongoBookingRepo) UpdateStatus(bookingID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"bookingId": bookingID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status for booking %s: %w", bookingID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}
