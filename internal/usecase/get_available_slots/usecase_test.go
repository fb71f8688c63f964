package get_available_slots

import (
	"context"
	"testing"
	"time"

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

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (r *fakeReservationRepo) GetByFieldAndDates(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}
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
		Name:             "Main pitch",
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

func TestExecute_EmptyField(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 1, Date: testDate()})
	require.NoError(t, err)

	// 14 часов работы нарезаются на целые 90-минутные слоты
	require.Len(t, resp.FreeSlots, 9)
	assert.Equal(t, "08:00", resp.FreeSlots[0].StartTime)
	assert.Equal(t, "09:30", resp.FreeSlots[0].EndTime)
	assert.Equal(t, "20:00", resp.FreeSlots[8].StartTime)
	assert.Equal(t, "21:30", resp.FreeSlots[8].EndTime)
	assert.Empty(t, resp.PendingSlots)
}

func TestExecute_PendingSlotReported(t *testing.T) {
	reservations := []*domain.Reservation{
		{
			ID:        1,
			FieldID:   1,
			UserID:    100,
			Date:      testDate(),
			StartTime: "10:00",
			EndTime:   "11:15",
			Status:    domain.StatusPending,
		},
	}

	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{reservations: reservations}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FieldID: 1, Date: testDate()})
	require.NoError(t, err)

	require.Len(t, resp.PendingSlots, 1)
	assert.Equal(t, "10:00", resp.PendingSlots[0].StartTime)
	assert.Equal(t, "11:15", resp.PendingSlots[0].EndTime)
	assert.Equal(t, domain.PendingSlotComment, resp.PendingSlots[0].Comment)
}

func TestExecute_FieldNotFound(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{err: fieldRepo.ErrFieldNotFound}, &fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 42, Date: testDate()})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_Misconfigured(t *testing.T) {
	field := testField()
	field.TerrainCount = 0

	uc := NewUseCase(&fakeFieldRepo{field: field}, &fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 1, Date: testDate()})
	assert.ErrorIs(t, err, ErrFieldMisconfigured)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FieldID: 0, Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
