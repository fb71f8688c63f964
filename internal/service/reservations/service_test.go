package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	list         []*domain.Reservation

	lastStatusFilter *domain.ReservationStatus
	lastFieldFilter  domain.FieldReservationsFilter
	cancelStatus     domain.ReservationStatus
	cancelReason     string
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeReservationRepo) GetByUserID(_ context.Context, _ int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	r.lastStatusFilter = status
	return r.list, nil
}

func (r *fakeReservationRepo) GetByFieldWithFilter(_ context.Context, filter domain.FieldReservationsFilter) ([]*domain.Reservation, error) {
	r.lastFieldFilter = filter
	return r.list, nil
}

func (r *fakeReservationRepo) Cancel(_ context.Context, id int64, status domain.ReservationStatus, reason string) error {
	res, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.cancelStatus = status
	r.cancelReason = reason
	res.Status = status
	res.CancellationReason = &reason
	now := time.Now()
	res.CancelledAt = &now
	return nil
}

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

type fakeClubClient struct {
	isManager bool
	err       error
}

func (c *fakeClubClient) IsManager(_ context.Context, _, _ int64) (bool, error) {
	return c.isManager, c.err
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
		TerrainCount:     2,
		MinSlotMinutes:   75,
		FixedSlotMinutes: 90,
		PricePerHour:     1200,
	}
}

func testReservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		FieldID:   1,
		UserID:    100,
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:30",
		Status:    status,
		Price:     1800,
	}
}

func newTestService(repo *fakeReservationRepo, club *fakeClubClient) *Service {
	return NewService(repo, &fakeFieldRepo{field: testField()}, club, nopLogger{})
}

func TestGetByID_Owner(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{})

	resp, err := svc.GetByID(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByID_ManagerSeesForeign(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: true})

	resp, err := svc.GetByID(context.Background(), 1, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.UserID)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: false})

	_, err := svc.GetByID(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	svc := newTestService(repo, &fakeClubClient{})

	_, err := svc.GetByID(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_StatusFilter(t *testing.T) {
	repo := &fakeReservationRepo{list: []*domain.Reservation{
		testReservation(1, domain.StatusApproved),
	}}
	svc := newTestService(repo, &fakeClubClient{})

	status := "approved"
	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 100,
		Status: &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	require.NotNil(t, repo.lastStatusFilter)
	assert.Equal(t, domain.StatusApproved, *repo.lastStatusFilter)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo, &fakeClubClient{})

	status := "confirmed"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 100,
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetFieldReservations_ManagerOnly(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo, &fakeClubClient{isManager: false})

	_, err := svc.GetFieldReservations(context.Background(), &models.GetFieldReservationsRequest{
		UserID:  999,
		FieldID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetFieldReservations_FilterPassedThrough(t *testing.T) {
	repo := &fakeReservationRepo{list: []*domain.Reservation{
		testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: true})

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	status := "pending"

	resp, err := svc.GetFieldReservations(context.Background(), &models.GetFieldReservationsRequest{
		UserID:          200,
		FieldID:         1,
		StartDate:       &start,
		EndDate:         &end,
		Status:          &status,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	assert.Equal(t, int64(1), repo.lastFieldFilter.FieldID)
	assert.True(t, repo.lastFieldFilter.IncludeInactive)
	require.NotNil(t, repo.lastFieldFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFieldFilter.Status)
}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusApproved),
	}}
	svc := newTestService(repo, &fakeClubClient{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             100,
		CancellationReason: "weather",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.cancelStatus)
	assert.Equal(t, "weather", repo.cancelReason)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "weather", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_ManagerCancelsForeign(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: true})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             999,
		CancellationReason: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancel_ForeignDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: false})

	_, err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusCancelled),
	}}
	svc := newTestService(repo, &fakeClubClient{})

	_, err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	svc := newTestService(repo, &fakeClubClient{})

	_, err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestReject_Manager(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: true})

	resp, err := svc.Reject(context.Background(), 1, &models.RejectReservationRequest{
		UserID: 200,
		Reason: "field closed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, repo.cancelStatus)
	assert.Equal(t, "field closed", repo.cancelReason)
	assert.Equal(t, "rejected", resp.Status)
}

func TestReject_OwnerIsNotEnough(t *testing.T) {
	// Владелец заявки без прав менеджера отклонить её не может
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: false})

	_, err := svc.Reject(context.Background(), 1, &models.RejectReservationRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestReject_ApprovedCannotBeRejected(t *testing.T) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testReservation(1, domain.StatusApproved),
	}}
	svc := newTestService(repo, &fakeClubClient{isManager: true})

	_, err := svc.Reject(context.Background(), 1, &models.RejectReservationRequest{UserID: 200})
	assert.ErrorIs(t, err, ErrCannotReject)
}
