package bookingRepo

import (
	"context"
	"fmt"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithSlotClaim claims the provider slot and inserts the booking inside
// one Mongo transaction. The slot update is conditional on isBooked=false, so
// of two concurrent requests for the same slot exactly one commits; the other
// aborts with ErrSlotTaken.
func (r *MongoBookingRepo) CreateWithSlotClaim(ctx context.Context, weekday string, booking *models.Booking) error {
	client := r.providerColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	slotPath := "availability." + weekday + ".slots"

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id": booking.ProviderID,
			slotPath: bson.M{
				"$elemMatch": bson.M{
					"startTime": booking.ScheduledTime.StartTime,
					"endTime":   booking.ScheduledTime.EndTime,
					"isBooked":  false,
				},
			},
		}
		update := bson.M{
			"$set": bson.M{slotPath + ".$.isBooked": true},
		}

		res, err := r.providerColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("slot claim failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotTaken
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
