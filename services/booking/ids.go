package booking

import (
	"fmt"
	"math/rand"
	"time"

	"pawhub/models"
)

var bookingIDPrefixes = map[string]string{
	models.ServiceVet:      "APT",
	models.ServiceGrooming: "GRM",
	models.ServiceTraining: "TRN",
}

const bookingIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingID generates a human-readable booking identifier of the form
// PREFIX-<unix millis>-<9 uppercase alphanumerics>, e.g.
// "APT-1717428000123-4F7KQ2M9X".
func NewBookingID(serviceType string) string {
	prefix, ok := bookingIDPrefixes[serviceType]
	if !ok {
		prefix = "BKG"
	}
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = bookingIDAlphabet[rand.Intn(len(bookingIDAlphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
