package donation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmZeroDistance(t *testing.T) {
	assert.Zero(t, HaversineKm(51.5074, -0.1278, 51.5074, -0.1278))
}

func TestHaversineKmOneDegreeDiagonal(t *testing.T) {
	// (0,0) to (1,1) is roughly 157 km, well outside a 10 km radius.
	d := HaversineKm(0, 0, 1, 1)
	assert.InDelta(t, 157.2, d, 0.5)
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := HaversineKm(40.7128, -74.0060, 34.0522, -118.2437)
	b := HaversineKm(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, a, b, 1e-9)

	// New York to Los Angeles, a sanity anchor.
	assert.InDelta(t, 3936, a, 10)
}

func TestHaversineKmSmallOffsets(t *testing.T) {
	// One degree of latitude is about 111 km everywhere.
	assert.InDelta(t, 111.2, HaversineKm(0, 0, 1, 0), 0.5)
	// A longitude degree shrinks with latitude.
	assert.Less(t, HaversineKm(60, 0, 60, 1), HaversineKm(0, 0, 0, 1))
}
