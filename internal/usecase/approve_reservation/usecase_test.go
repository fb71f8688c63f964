package approve_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
	"github.com/avolkhov/SFP-FieldService/pkg/ptr"
)

type fakeFieldRepo struct {
	field *domain.Field
}

func (r *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	return r.field, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation

	approvedID      int64
	approvedTerrain int64
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

func (r *fakeReservationRepo) Approve(_ context.Context, id int64, terrainID int64) error {
	r.approvedID = id
	r.approvedTerrain = terrainID
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

func testField(terrains int) *domain.Field {
	return &domain.Field{
		ID:               1,
		ClubID:           10,
		OpeningTime:      8 * 60,
		ClosingTime:      22 * 60,
		TerrainCount:     terrains,
		MinSlotMinutes:   75,
		FixedSlotMinutes: 90,
		PricePerHour:     1200,
	}
}

func testDate() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func pendingReservation(id int64, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		FieldID:   1,
		UserID:    100,
		Date:      testDate(),
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusPending,
		Price:     1800,
	}
}

func approvedReservation(id int64, start, end string, terrainID int64) *domain.Reservation {
	res := pendingReservation(id, start, end)
	res.Status = domain.StatusApproved
	res.TerrainID = ptr.Ptr(terrainID)
	return res
}

func newUseCase(field *domain.Field, repo *fakeReservationRepo, isManager bool) *UseCase {
	return NewUseCase(&fakeFieldRepo{field: field}, repo, &fakeClubClient{isManager: isManager}, fakeTxManager{}, nopLogger{})
}

func TestExecute_AssignsFirstTerrain(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{pendingReservation(1, "08:00", "09:30")}}
	uc := newUseCase(testField(2), repo, true)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, int64(1), resp.TerrainID)
	assert.Equal(t, int64(1), repo.approvedID)
}

func TestExecute_SkipsOccupiedTerrain(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		pendingReservation(1, "08:00", "09:30"),
		approvedReservation(2, "08:00", "09:30", 1),
	}}
	uc := newUseCase(testField(2), repo, true)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.TerrainID)
}

func TestExecute_NonOverlappingReservationKeepsTerrainFree(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		pendingReservation(1, "08:00", "09:30"),
		approvedReservation(2, "10:00", "11:30", 1),
	}}
	uc := newUseCase(testField(1), repo, true)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.TerrainID)
}

func TestExecute_NoFreeTerrain(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		pendingReservation(1, "08:00", "09:30"),
		approvedReservation(2, "08:00", "09:30", 1),
	}}
	uc := newUseCase(testField(1), repo, true)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	assert.ErrorIs(t, err, ErrNoFreeTerrain)
}

func TestExecute_PartialOverlapBlocks(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		pendingReservation(1, "09:00", "10:30"),
		approvedReservation(2, "08:00", "09:30", 1),
	}}
	uc := newUseCase(testField(1), repo, true)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	assert.ErrorIs(t, err, ErrNoFreeTerrain)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{pendingReservation(1, "08:00", "09:30")}}
	uc := newUseCase(testField(1), repo, false)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CannotApprove(t *testing.T) {
	res := pendingReservation(1, "08:00", "09:30")
	res.Status = domain.StatusCancelled
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{res}}
	uc := newUseCase(testField(1), repo, true)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 1, UserID: 500})
	assert.ErrorIs(t, err, ErrCannotApprove)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	uc := newUseCase(testField(1), &fakeReservationRepo{}, true)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 42, UserID: 500})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
