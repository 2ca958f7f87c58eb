package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	// Gachibowli to Hitech City, roughly 4.6 km apart.
	d := CalculateDistance(17.4401, 78.3489, 17.4483, 78.3915)
	assert.InDelta(t, 4.6, d, 0.5)

	// Zero distance for identical points.
	assert.Zero(t, CalculateDistance(17.44, 78.35, 17.44, 78.35))
}

func TestIsWithinRadius(t *testing.T) {
	assert.True(t, IsWithinRadius(17.4401, 78.3489, 17.4483, 78.3915, 5))
	assert.False(t, IsWithinRadius(17.4401, 78.3489, 17.4483, 78.3915, 1))
}

func TestEstimateETAMinutes(t *testing.T) {
	// 30 km at the default 30 km/h is an hour.
	assert.Equal(t, 60, EstimateETAMinutes(30, 0))
	assert.Equal(t, 30, EstimateETAMinutes(30, 60))
}
