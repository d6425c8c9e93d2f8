package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhub/models"
)

func day(slots ...models.Slot) models.DayAvailability {
	return models.DayAvailability{IsAvailable: true, Slots: slots}
}

func TestValidateDaySchedule(t *testing.T) {
	ok := day(
		models.Slot{StartTime: "09:00", EndTime: "09:30"},
		models.Slot{StartTime: "09:30", EndTime: "10:00"},
		models.Slot{StartTime: "14:00", EndTime: "15:00"},
	)
	assert.NoError(t, ValidateDaySchedule(ok))

	assert.NoError(t, ValidateDaySchedule(day()), "empty day is a valid closed schedule")
}

func TestValidateDayScheduleBadTimes(t *testing.T) {
	assert.Error(t, ValidateDaySchedule(day(models.Slot{StartTime: "9am", EndTime: "10:00"})))
	assert.Error(t, ValidateDaySchedule(day(models.Slot{StartTime: "09:00", EndTime: "25:00"})))
	assert.Error(t, ValidateDaySchedule(day(models.Slot{StartTime: "10:00", EndTime: "09:00"})),
		"end before start")
	assert.Error(t, ValidateDaySchedule(day(models.Slot{StartTime: "10:00", EndTime: "10:00"})),
		"zero-length slot")
}

func TestValidateDayScheduleOverlap(t *testing.T) {
	overlapping := day(
		models.Slot{StartTime: "09:00", EndTime: "10:00"},
		models.Slot{StartTime: "09:30", EndTime: "10:30"},
	)
	assert.Error(t, ValidateDaySchedule(overlapping))

	// Order in the payload does not matter; validation sorts first.
	shuffled := day(
		models.Slot{StartTime: "09:30", EndTime: "10:30"},
		models.Slot{StartTime: "09:00", EndTime: "10:00"},
	)
	assert.Error(t, ValidateDaySchedule(shuffled))

	// Back to back slots are fine.
	adjacent := day(
		models.Slot{StartTime: "09:00", EndTime: "10:00"},
		models.Slot{StartTime: "10:00", EndTime: "11:00"},
	)
	assert.NoError(t, ValidateDaySchedule(adjacent))
}

func TestSetDayAvailabilityRejectsUnknownWeekday(t *testing.T) {
	svc := &DefaultProviderService{}

	err := svc.SetDayAvailability("prov-1", "funday", day())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestSetDayAvailabilityWrapsValidation(t *testing.T) {
	svc := &DefaultProviderService{}

	err := svc.SetDayAvailability("prov-1", "monday",
		day(models.Slot{StartTime: "bad", EndTime: "10:00"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
