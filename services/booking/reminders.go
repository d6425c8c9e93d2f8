package booking

import (
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"pawhub/config"
	"pawhub/models"
	"pawhub/services/tasks"
	"pawhub/utils"
)

// AsynqReminderScheduler enqueues booking reminders on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds the production reminder scheduler from config.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	return &AsynqReminderScheduler{client: client, lead: lead}
}

// Schedule enqueues a reminder to fire before the booking starts. Bookings
// starting inside the lead window get no reminder.
func (r *AsynqReminderScheduler) Schedule(b *models.Booking, startAt time.Time) error {
	fireAt := startAt.Add(-r.lead)
	if !fireAt.After(time.Now()) {
		utils.GetLogger().Debug("reminder skipped: start inside lead window",
			zap.String("bookingID", b.BookingID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		ProviderID:  b.ProviderID,
		ServiceType: b.ServiceType,
		StartsAt:    startAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = r.client.Enqueue(task, opts...)
	return err
}
