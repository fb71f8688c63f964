package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	"github.com/avolkhov/SFP-FieldService/pkg/txmanager"
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
	created      *domain.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	stored := *res
	stored.ID = 1
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.created = &stored
	return &stored, nil
}

func (r *fakeReservationRepo) GetByFieldAndDates(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return r.reservations, nil
}

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
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

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.InDelta(t, 1800.0, resp.Price, 1e-9)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Nil(t, repo.created.TerrainID)
}

func TestExecute_CustomDurationWithinSlot(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, repo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:15",
	})
	require.NoError(t, err)

	// 75 минут по ставке 1200/час
	assert.InDelta(t, 1500.0, resp.Price, 1e-9)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        7,
				FieldID:   1,
				UserID:    200,
				Date:      testDate(),
				StartTime: "08:00",
				EndTime:   "09:30",
				Status:    domain.StatusApproved,
			},
		},
	}
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_PendingAlsoBlocks(t *testing.T) {
	// PENDING занимает ёмкость так же, как и APPROVED
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        7,
				FieldID:   1,
				UserID:    200,
				Date:      testDate(),
				StartTime: "08:00",
				EndTime:   "09:30",
				Status:    domain.StatusPending,
			},
		},
	}
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_DurationOutOfRange(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrDurationOutOfRange)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "06:00",
		EndTime:   "07:30",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_FieldNotFound(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{err: fieldRepo.ErrFieldNotFound}, &fakeReservationRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   42,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecute_SerializationConflict(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, &fakeTxManager{err: txmanager.ErrSerialization}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		FieldID:   1,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	assert.ErrorIs(t, err, ErrConcurrencyConflict)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFieldRepo{field: testField()}, &fakeReservationRepo{}, &fakeTxManager{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"no user", &Request{FieldID: 1, Date: testDate(), StartTime: "08:00", EndTime: "09:30"}},
		{"no field", &Request{UserID: 100, Date: testDate(), StartTime: "08:00", EndTime: "09:30"}},
		{"no date", &Request{UserID: 100, FieldID: 1, StartTime: "08:00", EndTime: "09:30"}},
		{"bad time", &Request{UserID: 100, FieldID: 1, Date: testDate(), StartTime: "25:00", EndTime: "09:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
