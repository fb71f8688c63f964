package validate_reservation_time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

type fakeFieldRepo struct {
	field *domain.Field
}

func (r *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	return r.field, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (r *fakeReservationRepo) GetByFieldAndDates(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return r.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testField() *domain.Field {
	return &domain.Field{
		ID:               1,
		ClubID:           10,
		OpeningTime:      8 * 60,
		ClosingTime:      22 * 60,
		TerrainCount:     1,
		MinSlotMinutes:   75,
		FixedSlotMinutes: 90,
		PricePerHour:     1200,
	}
}

func testDate() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_Validity(t *testing.T) {
	occupied := []*domain.Reservation{
		{
			ID:        1,
			FieldID:   1,
			UserID:    100,
			Date:      testDate(),
			StartTime: "08:00",
			EndTime:   "09:30",
			Status:    domain.StatusApproved,
		},
	}

	tests := []struct {
		name         string
		reservations []*domain.Reservation
		start        string
		end          string
		want         bool
	}{
		{"whole fixed slot", nil, "08:00", "09:30", true},
		{"custom duration inside one slot", nil, "08:00", "09:15", true},
		{"custom duration not from slot start", nil, "08:10", "09:25", true},
		{"too short", nil, "08:00", "09:10", false},
		{"too long", nil, "08:00", "09:45", false},
		{"spans two slots", nil, "09:00", "10:30", false},
		{"before opening", nil, "07:00", "08:30", false},
		{"after closing", nil, "21:00", "22:30", false},
		{"slot taken", occupied, "08:00", "09:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{reservations: tt.reservations}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				FieldID:   1,
				Date:      testDate(),
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Valid)
		})
	}
}

func TestExecute_OvernightField(t *testing.T) {
	field := testField()
	field.OpeningTime = 20 * 60
	field.ClosingTime = 2 * 60

	uc := NewUseCase(&fakeFieldRepo{field: field}, &fakeReservationRepo{}, nopLogger{})

	// Интервал через полночь: конец раньше начала
	resp, err := uc.Execute(context.Background(), &Request{
		FieldID:   1,
		Date:      testDate(),
		StartTime: "23:00",
		EndTime:   "00:30",
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestExecute_MalformedTime(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID:   1,
		Date:      testDate(),
		StartTime: "8am",
		EndTime:   "09:30",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
