package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhub/models"
)

func scheduledBooking(t *testing.T, serviceType, start, end string) models.Booking {
	t.Helper()
	return models.Booking{
		BookingID:     "APT-1717428000123-4F7KQ2M9X",
		ServiceType:   serviceType,
		ScheduledDate: testDate,
		ScheduledTime: models.TimeWindow{StartTime: start, EndTime: end},
		Status:        models.StatusScheduled,
	}
}

func clockAt(t *testing.T, hhmm string) time.Time {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04", testDate+" "+hhmm, time.Local)
	require.NoError(t, err)
	return now
}

func TestCancelThreshold(t *testing.T) {
	assert.Equal(t, 2*time.Hour, CancelThreshold(models.ServiceVet))
	assert.Equal(t, 24*time.Hour, CancelThreshold(models.ServiceGrooming))
	assert.Equal(t, 24*time.Hour, CancelThreshold(models.ServiceTraining))
}

func TestFormatTimeRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Hour, ""},
		{0, ""},
		{30 * time.Second, "1 minute"},
		{time.Minute, "1 minute"},
		{45 * time.Minute, "45 minutes"},
		{time.Hour, "1 hour"},
		{90 * time.Minute, "1 hour"},
		{5 * time.Hour, "5 hours"},
		{24 * time.Hour, "1 day"},
		{72 * time.Hour, "3 days"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimeRemaining(tc.d), "duration %v", tc.d)
	}
}

func TestDecorateVetCancellability(t *testing.T) {
	b := scheduledBooking(t, models.ServiceVet, "14:00", "14:30")

	// 90 minutes before start is inside the 2 hour window.
	view := Decorate(b, clockAt(t, "12:30"))
	assert.False(t, view.CanCancel)
	assert.Equal(t, "1 hour", view.TimeRemaining)

	// 3 hours before start is outside it.
	view = Decorate(b, clockAt(t, "11:00"))
	assert.True(t, view.CanCancel)
	assert.Equal(t, "3 hours", view.TimeRemaining)
}

func TestDecorateStandardCancellability(t *testing.T) {
	b := scheduledBooking(t, models.ServiceGrooming, "14:00", "15:00")

	day, err := time.ParseInLocation("2006-01-02 15:04", testDate+" 14:00", time.Local)
	require.NoError(t, err)

	// 20 hours ahead: inside the 24 hour window.
	view := Decorate(b, day.Add(-20*time.Hour))
	assert.False(t, view.CanCancel)

	// 30 hours ahead: cancellable but not yet reschedulable (needs 48h).
	view = Decorate(b, day.Add(-30*time.Hour))
	assert.True(t, view.CanCancel)
	assert.False(t, view.CanReschedule)

	// 50 hours ahead: both.
	view = Decorate(b, day.Add(-50*time.Hour))
	assert.True(t, view.CanCancel)
	assert.True(t, view.CanReschedule)
}

func TestDecorateTerminalStatusNotCancellable(t *testing.T) {
	b := scheduledBooking(t, models.ServiceVet, "14:00", "14:30")
	b.Status = models.StatusCompleted

	view := Decorate(b, clockAt(t, "08:00"))
	assert.False(t, view.CanCancel)
	assert.False(t, view.CanReschedule)
}

func TestDecorateJoinWindow(t *testing.T) {
	b := scheduledBooking(t, models.ServiceVet, "14:00", "14:30")
	b.Consultation = &models.ConsultationDetails{ConsultationType: "video", Reason: "follow-up"}

	// Too early: the window opens 10 minutes before the start.
	assert.False(t, Decorate(b, clockAt(t, "13:45")).CanJoin)
	// Window open.
	assert.True(t, Decorate(b, clockAt(t, "13:50")).CanJoin)
	assert.True(t, Decorate(b, clockAt(t, "14:15")).CanJoin)
	assert.True(t, Decorate(b, clockAt(t, "14:30")).CanJoin)
	// Session over.
	assert.False(t, Decorate(b, clockAt(t, "14:31")).CanJoin)
}

func TestDecorateJoinRequiresVideo(t *testing.T) {
	b := scheduledBooking(t, models.ServiceVet, "14:00", "14:30")
	b.Consultation = &models.ConsultationDetails{ConsultationType: "clinic", Reason: "checkup"}

	assert.False(t, Decorate(b, clockAt(t, "13:55")).CanJoin)

	cancelled := scheduledBooking(t, models.ServiceVet, "14:00", "14:30")
	cancelled.Consultation = &models.ConsultationDetails{ConsultationType: "video", Reason: "checkup"}
	cancelled.Status = models.StatusCancelled
	assert.False(t, Decorate(cancelled, clockAt(t, "13:55")).CanJoin)
}

func TestDecorateVideoTrainingJoinable(t *testing.T) {
	b := scheduledBooking(t, models.ServiceTraining, "14:00", "15:00")
	b.Training = &models.TrainingDetails{TrainingType: "video", TrainingCategory: "obedience"}

	assert.True(t, Decorate(b, clockAt(t, "14:00")).CanJoin)
}

func TestDecoratePastBookingEmptyRemaining(t *testing.T) {
	b := scheduledBooking(t, models.ServiceVet, "09:00", "09:30")

	view := Decorate(b, clockAt(t, "12:00"))
	assert.Empty(t, view.TimeRemaining)
	assert.False(t, view.CanCancel)
}
