package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pawhub/models"
)

func TestNewBookingIDFormat(t *testing.T) {
	assert.Regexp(t, `^APT-\d+-[A-Z0-9]{9}$`, NewBookingID(models.ServiceVet))
	assert.Regexp(t, `^GRM-\d+-[A-Z0-9]{9}$`, NewBookingID(models.ServiceGrooming))
	assert.Regexp(t, `^TRN-\d+-[A-Z0-9]{9}$`, NewBookingID(models.ServiceTraining))
	assert.Regexp(t, `^BKG-\d+-[A-Z0-9]{9}$`, NewBookingID("something-else"))
}

func TestNewBookingIDDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBookingID(models.ServiceVet)
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}
