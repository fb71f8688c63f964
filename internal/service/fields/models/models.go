package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidValue возвращается при недопустимом значении конфигурации
	ErrInvalidValue = errors.New("invalid config value")
)

// Request модели

// UpdateFieldConfigRequest запрос на частичное обновление конфигурации поля.
// Передаются только изменяемые параметры: nil означает "оставить как есть".
type UpdateFieldConfigRequest struct {
	UserID           int64    `json:"userId"`
	Name             *string  `json:"name,omitempty"`
	OpeningTime      *string  `json:"openingTime,omitempty"` // "HH:MM"
	ClosingTime      *string  `json:"closingTime,omitempty"` // "HH:MM"
	TerrainCount     *int     `json:"terrainCount,omitempty"`
	MinSlotMinutes   *int     `json:"minSlotMinutes,omitempty"`
	FixedSlotMinutes *int     `json:"fixedSlotMinutes,omitempty"`
	PricePerHour     *float64 `json:"pricePerHour,omitempty"`
}

// ToDomainUpdate конвертирует request в domain команду обновления
func (r *UpdateFieldConfigRequest) ToDomainUpdate() (domain.FieldConfigUpdate, error) {
	update := domain.FieldConfigUpdate{
		Name:             r.Name,
		TerrainCount:     r.TerrainCount,
		MinSlotMinutes:   r.MinSlotMinutes,
		FixedSlotMinutes: r.FixedSlotMinutes,
		PricePerHour:     r.PricePerHour,
	}

	if r.OpeningTime != nil {
		minutes, err := timeutil.ToMinutes(*r.OpeningTime)
		if err != nil {
			return update, fmt.Errorf("%w: openingTime: %v", ErrInvalidTime, err)
		}
		update.OpeningTime = &minutes
	}

	if r.ClosingTime != nil {
		minutes, err := timeutil.ToMinutes(*r.ClosingTime)
		if err != nil {
			return update, fmt.Errorf("%w: closingTime: %v", ErrInvalidTime, err)
		}
		update.ClosingTime = &minutes
	}

	if r.TerrainCount != nil && (*r.TerrainCount < domain.MinTerrainCount || *r.TerrainCount > domain.MaxTerrainCount) {
		return update, fmt.Errorf("%w: terrainCount must be in [%d, %d]",
			ErrInvalidValue, domain.MinTerrainCount, domain.MaxTerrainCount)
	}

	if r.MinSlotMinutes != nil && *r.MinSlotMinutes <= 0 {
		return update, fmt.Errorf("%w: minSlotMinutes must be positive", ErrInvalidValue)
	}

	if r.FixedSlotMinutes != nil && *r.FixedSlotMinutes <= 0 {
		return update, fmt.Errorf("%w: fixedSlotMinutes must be positive", ErrInvalidValue)
	}

	if r.MinSlotMinutes != nil && r.FixedSlotMinutes != nil && *r.MinSlotMinutes > *r.FixedSlotMinutes {
		return update, fmt.Errorf("%w: minSlotMinutes must not exceed fixedSlotMinutes", ErrInvalidValue)
	}

	if r.PricePerHour != nil && *r.PricePerHour < 0 {
		return update, fmt.Errorf("%w: pricePerHour must be non-negative", ErrInvalidValue)
	}

	return update, nil
}

// Response модели

// FieldResponse ответ с конфигурацией поля
type FieldResponse struct {
	ID               int64   `json:"id"`
	ClubID           int64   `json:"clubId"`
	Name             string  `json:"name"`
	OpeningTime      string  `json:"openingTime"` // "HH:MM"
	ClosingTime      string  `json:"closingTime"` // "HH:MM"
	TerrainCount     int     `json:"terrainCount"`
	MinSlotMinutes   int     `json:"minSlotMinutes"`
	FixedSlotMinutes int     `json:"fixedSlotMinutes"`
	PricePerHour     float64 `json:"pricePerHour"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FieldListResponse ответ со списком полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// Методы конвертации

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) *FieldResponse {
	if f == nil {
		return nil
	}

	return &FieldResponse{
		ID:               f.ID,
		ClubID:           f.ClubID,
		Name:             f.Name,
		OpeningTime:      timeutil.ToTime(f.OpeningTime),
		ClosingTime:      timeutil.ToTime(f.ClosingTime),
		TerrainCount:     f.TerrainCount,
		MinSlotMinutes:   f.MinSlotMinutes,
		FixedSlotMinutes: f.FixedSlotMinutes,
		PricePerHour:     f.PricePerHour,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

// FromDomainFieldList конвертирует список domain моделей в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	result := &FieldListResponse{
		Fields: make([]FieldResponse, 0, len(fields)),
	}

	for _, f := range fields {
		if resp := FromDomainField(f); resp != nil {
			result.Fields = append(result.Fields, *resp)
		}
	}

	return result
}
