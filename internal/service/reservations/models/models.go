package models

import (
	"errors"
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// RejectReservationRequest запрос на отклонение заявки менеджером
type RejectReservationRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetFieldReservationsRequest запрос на получение бронирований поля
type GetFieldReservationsRequest struct {
	UserID          int64      `json:"userId"`
	FieldID         int64      `json:"fieldId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и отклонённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFieldReservationsRequest) ToDomainFilter() (domain.FieldReservationsFilter, error) {
	filter := domain.FieldReservationsFilter{
		FieldID:         r.FieldID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	FieldID   int64  `json:"fieldId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
	Status    string `json:"status"`

	TerrainID *int64  `json:"terrainId,omitempty"`
	Price     float64 `json:"price"`
	Notes     *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		FieldID:            r.FieldID,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Status:             string(r.Status),
		TerrainID:          r.TerrainID,
		Price:              r.Price,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if resp := FromDomainReservation(r); resp != nil {
			result.Reservations = append(result.Reservations, *resp)
		}
	}

	return result
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusPending, domain.StatusWaiting, domain.StatusApproved,
		domain.StatusCancelled, domain.StatusRejected:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
