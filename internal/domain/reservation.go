package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusWaiting   ReservationStatus = "waiting"
	StatusApproved  ReservationStatus = "approved"
	StatusCancelled ReservationStatus = "cancelled"
	StatusRejected  ReservationStatus = "rejected"
)

// Reservation represents a claim on one terrain of a field for a time interval.
// StartTime/EndTime хранятся строками "HH:MM"; интервал через полночь
// представляется как EndTime <= StartTime без отдельного флага.
type Reservation struct {
	ID      int64
	FieldID int64
	UserID  int64

	Date      time.Time // календарный день, без времени
	StartTime string    // "HH:MM"
	EndTime   string    // "HH:MM"

	Status    ReservationStatus
	TerrainID *int64 // назначается при подтверждении

	Price float64
	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still claims field capacity.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusRejected
}

// IsApproved returns true if the reservation is finally confirmed.
func (r *Reservation) IsApproved() bool {
	return r.Status == StatusApproved
}

// CanBeCancelled returns true if the reservation can still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusWaiting || r.Status == StatusApproved
}

// CanBeApproved returns true if the reservation awaits an owner decision.
func (r *Reservation) CanBeApproved() bool {
	return r.Status == StatusPending || r.Status == StatusWaiting
}

// CanBeRescheduled returns true if the time slot can still be changed.
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusWaiting
}

// FieldReservationsFilter фильтр для выборки бронирований поля
type FieldReservationsFilter struct {
	FieldID         int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и отклонённые
}
