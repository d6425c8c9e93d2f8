package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"pawhub/models"
)

const TypeBookingReminder = "reminder:booking"

// NewBookingReminderTask builds the asynq task for a booking reminder
// scheduled to fire at the given time.
func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
