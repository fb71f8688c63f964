package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
	"github.com/avolkhov/SFP-FieldService/pkg/ptr"
)

type fakeFieldRepo struct {
	field  *domain.Field
	fields []*domain.Field
	err    error

	lastUpdate domain.FieldConfigUpdate
	updated    bool
}

func (r *fakeFieldRepo) GetByID(_ context.Context, _ int64) (*domain.Field, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.field, nil
}

func (r *fakeFieldRepo) GetByClub(_ context.Context, _ int64) ([]*domain.Field, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.fields, nil
}

func (r *fakeFieldRepo) UpdateConfig(_ context.Context, _ int64, update domain.FieldConfigUpdate) error {
	if r.err != nil {
		return r.err
	}
	r.lastUpdate = update
	r.updated = true
	if update.OpeningTime != nil {
		r.field.OpeningTime = *update.OpeningTime
	}
	if update.ClosingTime != nil {
		r.field.ClosingTime = *update.ClosingTime
	}
	if update.TerrainCount != nil {
		r.field.TerrainCount = *update.TerrainCount
	}
	if update.PricePerHour != nil {
		r.field.PricePerHour = *update.PricePerHour
	}
	return nil
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

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeFieldRepo{field: testField()}, &fakeClubClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.OpeningTime)
	assert.Equal(t, "22:00", resp.ClosingTime)
	assert.Equal(t, 2, resp.TerrainCount)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeFieldRepo{err: fieldRepo.ErrFieldNotFound}, &fakeClubClient{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestGetByClub(t *testing.T) {
	repo := &fakeFieldRepo{fields: []*domain.Field{testField(), testField()}}
	svc := NewService(repo, &fakeClubClient{}, nopLogger{})

	resp, err := svc.GetByClub(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, resp.Fields, 2)
}

func TestUpdateConfig_Manager(t *testing.T) {
	repo := &fakeFieldRepo{field: testField()}
	svc := NewService(repo, &fakeClubClient{isManager: true}, nopLogger{})

	resp, err := svc.UpdateConfig(context.Background(), 1, &models.UpdateFieldConfigRequest{
		UserID:       200,
		OpeningTime:  ptr.Ptr("09:00"),
		TerrainCount: ptr.Ptr(3),
		PricePerHour: ptr.Ptr(1500.0),
	})
	require.NoError(t, err)

	assert.True(t, repo.updated)
	require.NotNil(t, repo.lastUpdate.OpeningTime)
	assert.Equal(t, 9*60, *repo.lastUpdate.OpeningTime)

	assert.Equal(t, "09:00", resp.OpeningTime)
	assert.Equal(t, 3, resp.TerrainCount)
	assert.Equal(t, 1500.0, resp.PricePerHour)
}

func TestUpdateConfig_NotManager(t *testing.T) {
	repo := &fakeFieldRepo{field: testField()}
	svc := NewService(repo, &fakeClubClient{isManager: false}, nopLogger{})

	_, err := svc.UpdateConfig(context.Background(), 1, &models.UpdateFieldConfigRequest{
		UserID: 999,
		Name:   ptr.Ptr("New name"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updated)
}

func TestUpdateConfig_EmptyUpdate(t *testing.T) {
	repo := &fakeFieldRepo{field: testField()}
	svc := NewService(repo, &fakeClubClient{isManager: true}, nopLogger{})

	_, err := svc.UpdateConfig(context.Background(), 1, &models.UpdateFieldConfigRequest{UserID: 200})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestUpdateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateFieldConfigRequest
	}{
		{
			name: "bad opening time",
			req:  &models.UpdateFieldConfigRequest{UserID: 200, OpeningTime: ptr.Ptr("9am")},
		},
		{
			name: "terrain count out of range",
			req:  &models.UpdateFieldConfigRequest{UserID: 200, TerrainCount: ptr.Ptr(0)},
		},
		{
			name: "min above fixed",
			req: &models.UpdateFieldConfigRequest{
				UserID:           200,
				MinSlotMinutes:   ptr.Ptr(120),
				FixedSlotMinutes: ptr.Ptr(90),
			},
		},
		{
			name: "negative price",
			req:  &models.UpdateFieldConfigRequest{UserID: 200, PricePerHour: ptr.Ptr(-1.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFieldRepo{field: testField()}
			svc := NewService(repo, &fakeClubClient{isManager: true}, nopLogger{})

			_, err := svc.UpdateConfig(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, repo.updated)
		})
	}
}
