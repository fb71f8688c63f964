package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name         string
		pricePerHour float64
		duration     int
		want         float64
	}{
		{"full slot", 1200, 90, 1800},
		{"minimal duration", 1200, 75, 1500},
		{"fractional rate rounded", 999.99, 75, 1249.99},
		{"half cent rounds up", 0.07, 75, 0.09},
		{"zero rate", 0, 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cost(tt.pricePerHour, tt.duration, 75, 90)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCost_DurationOutOfRange(t *testing.T) {
	for _, duration := range []int{0, 74, 91} {
		_, err := Cost(1200, duration, 75, 90)
		assert.ErrorIs(t, err, ErrDurationOutOfRange, "duration %d", duration)
	}
}

func TestCost_NegativeInputs(t *testing.T) {
	_, err := Cost(-1, 90, 75, 90)
	assert.ErrorIs(t, err, ErrNegativeCostInput)

	_, err = Cost(1200, -90, 75, 90)
	assert.ErrorIs(t, err, ErrNegativeCostInput)
}
