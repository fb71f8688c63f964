package calculate_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
)

type fakeFieldRepo struct {
	field *domain.Field
	err   error
}

func (r *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.field, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testField(pricePerHour float64) *domain.Field {
	return &domain.Field{
		ID:               1,
		ClubID:           10,
		OpeningTime:      8 * 60,
		ClosingTime:      22 * 60,
		TerrainCount:     1,
		MinSlotMinutes:   75,
		FixedSlotMinutes: 90,
		PricePerHour:     pricePerHour,
	}
}

func TestExecute_Price(t *testing.T) {
	tests := []struct {
		name         string
		pricePerHour float64
		duration     int
		want         float64
	}{
		{"fixed slot", 1200, 90, 1800},
		{"minimal duration", 1200, 75, 1500},
		{"fractional result rounded", 999.99, 75, 1249.99},
		{"half rounds up", 0.07, 75, 0.09},
		{"zero rate", 0, 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeFieldRepo{field: testField(tt.pricePerHour)}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{FieldID: 1, DurationMinutes: tt.duration})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, resp.Price, 1e-9)
		})
	}
}

func TestExecute_DurationOutOfRange(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField(1200)}, nopLogger{})

	for _, duration := range []int{60, 74, 91, 120} {
		_, err := uc.Execute(context.Background(), &Request{FieldID: 1, DurationMinutes: duration})
		assert.ErrorIs(t, err, ErrDurationOutOfRange, "duration %d", duration)
	}
}

func TestExecute_FieldNotFound(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{err: fieldRepo.ErrFieldNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 42, DurationMinutes: 90})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField(1200)}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 0, DurationMinutes: 90})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: 1, DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
