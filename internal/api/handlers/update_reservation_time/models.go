package update_reservation_time

import (
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	updateReservationTime "github.com/avolkhov/SFP-FieldService/internal/usecase/update_reservation_time"
)

// UpdateTimeSlotRequest HTTP request model: только новые дата и время
type UpdateTimeSlotRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	FieldID   int64   `json:"fieldId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateTimeSlotRequest) ToUseCaseRequest(reservationID, userID int64) (*updateReservationTime.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &updateReservationTime.Request{
		ReservationID: reservationID,
		UserID:        userID,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservationTime.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		FieldID:   resp.FieldID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Status:    resp.Status,
		Price:     resp.Price,
	}
}
