package domain

import (
	"errors"
	"math"
)

var (
	// ErrNegativeCostInput возвращается при отрицательной ставке или длительности
	ErrNegativeCostInput = errors.New("price inputs must be non-negative")

	// ErrDurationOutOfRange возвращается, когда длительность не попадает
	// в допустимый диапазон поля
	ErrDurationOutOfRange = errors.New("duration is out of allowed range")
)

// Cost computes the price of a reservation: pricePerHour prorated by the
// duration in minutes, rounded half-up to two decimal places. The duration
// must fall within the field's [minMinutes, maxMinutes] band.
func Cost(pricePerHour float64, durationMinutes, minMinutes, maxMinutes int) (float64, error) {
	if pricePerHour < 0 || durationMinutes < 0 {
		return 0, ErrNegativeCostInput
	}
	if durationMinutes < minMinutes || durationMinutes > maxMinutes {
		return 0, ErrDurationOutOfRange
	}

	raw := pricePerHour * float64(durationMinutes) / 60.0
	// Округление half-up до копеек
	return math.Floor(raw*100+0.5) / 100, nil
}
