package update_reservation_time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
)

type fakeFieldRepo struct {
	field *domain.Field
}

func (r *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	return r.field, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation

	updatedID    int64
	updatedDate  time.Time
	updatedStart string
	updatedEnd   string
	updatedPrice float64
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (r *fakeReservationRepo) GetByFieldAndDates(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return r.reservations, nil
}

func (r *fakeReservationRepo) UpdateTimeSlot(_ context.Context, id int64, date time.Time, startTime, endTime string, price float64) error {
	r.updatedID = id
	r.updatedDate = date
	r.updatedStart = startTime
	r.updatedEnd = endTime
	r.updatedPrice = price
	return nil
}

type fakeClubClient struct {
	isManager bool
}

func (c *fakeClubClient) IsManager(_ context.Context, _, _ int64) (bool, error) {
	return c.isManager, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func ownReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		FieldID:   1,
		UserID:    100,
		Date:      testDate(),
		StartTime: "08:00",
		EndTime:   "09:30",
		Status:    domain.StatusPending,
		Price:     1800,
	}
}

func newUseCase(repo *fakeReservationRepo, isManager bool) *UseCase {
	return NewUseCase(&fakeFieldRepo{field: testField()}, repo, &fakeClubClient{isManager: isManager}, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{ownReservation()}}
	uc := newUseCase(repo, false)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:15",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.InDelta(t, 1500.0, resp.Price, 1e-9)

	assert.Equal(t, int64(1), repo.updatedID)
	assert.Equal(t, "11:00", repo.updatedStart)
	assert.Equal(t, "12:15", repo.updatedEnd)
	assert.InDelta(t, 1500.0, repo.updatedPrice, 1e-9)
}

func TestExecute_MoveWithinOwnWindow(t *testing.T) {
	// Собственная заявка не должна блокировать перенос внутри своего окна
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{ownReservation()}}
	uc := newUseCase(repo, false)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "08:15",
		EndTime:       "09:30",
	})
	require.NoError(t, err)
}

func TestExecute_TargetSlotTaken(t *testing.T) {
	other := ownReservation()
	other.ID = 2
	other.UserID = 200
	other.StartTime = "11:00"
	other.EndTime = "12:30"
	other.Status = domain.StatusApproved

	repo := &fakeReservationRepo{reservations: []*domain.Reservation{ownReservation(), other}}
	uc := newUseCase(repo, false)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:30",
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_ApprovedCannotBeRescheduled(t *testing.T) {
	res := ownReservation()
	res.Status = domain.StatusApproved

	repo := &fakeReservationRepo{reservations: []*domain.Reservation{res}}
	uc := newUseCase(repo, false)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:30",
	})
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_ForeignReservationNeedsManagerRights(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{ownReservation()}}

	_, err := newUseCase(repo, false).Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        999,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:30",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = newUseCase(repo, true).Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        999,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:30",
	})
	require.NoError(t, err)
}

func TestExecute_DurationOutOfRange(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{ownReservation()}}
	uc := newUseCase(repo, false)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "11:30",
	})
	assert.ErrorIs(t, err, ErrDurationOutOfRange)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, false)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		UserID:        100,
		Date:          testDate(),
		StartTime:     "11:00",
		EndTime:       "12:30",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
