package domain

import (
	"errors"
	"time"

	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

var (
	// ErrFieldMisconfigured возвращается, когда у поля отсутствуют часы работы
	// или задано некорректное количество площадок
	ErrFieldMisconfigured = errors.New("field is misconfigured")
)

// Field represents a bookable sports field owned by a club.
// A field consists of TerrainCount interchangeable terrains; opening and
// closing times are minute-of-day offsets and the window may wrap past
// midnight (closing <= opening).
type Field struct {
	ID           int64
	ClubID       int64
	Name         string
	OpeningTime  int // минуты от начала суток
	ClosingTime  int // минуты от начала суток, может быть меньше OpeningTime
	TerrainCount int
	MinSlotMinutes   int
	FixedSlotMinutes int
	PricePerHour     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the invariants required before any timeline can be built.
func (f *Field) Validate() error {
	if f.OpeningTime == f.ClosingTime {
		return ErrFieldMisconfigured
	}
	if f.OpeningTime < 0 || f.OpeningTime >= timeutil.MinutesPerDay ||
		f.ClosingTime < 0 || f.ClosingTime >= timeutil.MinutesPerDay {
		return ErrFieldMisconfigured
	}
	if f.TerrainCount < MinTerrainCount {
		return ErrFieldMisconfigured
	}
	if f.FixedSlotMinutes <= 0 || f.MinSlotMinutes <= 0 {
		return ErrFieldMisconfigured
	}
	return nil
}

// Hours returns the normalized operating window: closing is shifted by a day
// when the field operates past midnight, so closing always exceeds opening.
func (f *Field) Hours() (opening, closing int) {
	opening = f.OpeningTime
	closing = f.ClosingTime
	if closing <= opening {
		closing += timeutil.MinutesPerDay
	}
	return opening, closing
}

// WrapsPastMidnight returns true if the field closes after midnight.
func (f *Field) WrapsPastMidnight() bool {
	return f.ClosingTime <= f.OpeningTime
}

// FieldConfigUpdate narrow command struct for partial field configuration
// updates: only non-nil fields are applied. Нет необходимости передавать
// целую сущность с фиктивными значениями.
type FieldConfigUpdate struct {
	Name             *string
	OpeningTime      *int
	ClosingTime      *int
	TerrainCount     *int
	MinSlotMinutes   *int
	FixedSlotMinutes *int
	PricePerHour     *float64
}

// IsEmpty returns true if the update does not change anything.
func (u *FieldConfigUpdate) IsEmpty() bool {
	return u.Name == nil && u.OpeningTime == nil && u.ClosingTime == nil &&
		u.TerrainCount == nil && u.MinSlotMinutes == nil &&
		u.FixedSlotMinutes == nil && u.PricePerHour == nil
}
